package life

import (
	"strings"
)

// NeighborSet is a set of neighbor counts, one bit per count 1..8. Count
// zero is never a member: a dead cell with no live neighbors stays dead.
type NeighborSet uint16

// Counts builds a NeighborSet from the given counts. Counts outside 1..8
// are ignored.
func Counts(ks ...int) NeighborSet {
	var s NeighborSet
	for _, k := range ks {
		if k >= 1 && k <= 8 {
			s |= 1 << k
		}
	}
	return s
}

// Contains reports whether count k is in the set.
func (s NeighborSet) Contains(k int) bool {
	return k >= 1 && k <= 8 && s&(1<<k) != 0
}

func (s NeighborSet) String() string {
	var b strings.Builder
	for k := 1; k <= 8; k++ {
		if s.Contains(k) {
			b.WriteByte(byte('0' + k))
		}
	}
	return b.String()
}

// Rule is an outer-totalistic rule: the neighbor counts at which a dead
// cell is born and a live cell survives.
type Rule struct {
	Birth    NeighborSet
	Survival NeighborSet
}

// Named rules.
var (
	Conway      = Rule{Birth: Counts(3), Survival: Counts(2, 3)}
	HighLife    = Rule{Birth: Counts(3, 6), Survival: Counts(2, 3)}
	Seeds       = Rule{Birth: Counts(2), Survival: 0}
	DayAndNight = Rule{Birth: Counts(3, 6, 7, 8), Survival: Counts(3, 4, 6, 7, 8)}
	Diamoeba    = Rule{Birth: Counts(3, 5, 6, 7, 8), Survival: Counts(5, 6, 7, 8)}
)

// ParseRule parses a rule string of the form "B3/S23" or "b36/s23". Digits
// may repeat; order does not matter. An empty digit run is a valid empty
// set, so "B2/S" parses to the Seeds rule.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, &RuleError{Input: s, Reason: "expected two /-separated parts"}
	}
	b, err := parseCounts(s, parts[0], 'B')
	if err != nil {
		return Rule{}, err
	}
	v, err := parseCounts(s, parts[1], 'S')
	if err != nil {
		return Rule{}, err
	}
	return Rule{Birth: b, Survival: v}, nil
}

func parseCounts(input, part string, prefix byte) (NeighborSet, error) {
	if part == "" || (part[0] != prefix && part[0] != prefix+'a'-'A') {
		return 0, &RuleError{Input: input, Reason: "part must start with " + string(prefix)}
	}
	var s NeighborSet
	for _, c := range part[1:] {
		if c < '1' || c > '8' {
			return 0, &RuleError{Input: input, Reason: "counts must be digits 1..8"}
		}
		s |= 1 << (c - '0')
	}
	return s, nil
}

// MustRule parses a rule string and panics on error. Intended for
// package-level rule constants.
func MustRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the rule in B/S notation, digits ascending.
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}
