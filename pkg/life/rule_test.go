package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	r, err := ParseRule("B3/S23")
	require.NoError(t, err)
	assert.Equal(t, Conway, r)

	r, err = ParseRule("b36/s23")
	require.NoError(t, err)
	assert.Equal(t, HighLife, r)

	r, err = ParseRule("B2/S")
	require.NoError(t, err)
	assert.Equal(t, Seeds, r)

	r, err = ParseRule("B3678/S34678")
	require.NoError(t, err)
	assert.Equal(t, DayAndNight, r)
}

func TestParseRuleDigitsUnorderedAndRepeated(t *testing.T) {
	r, err := ParseRule("B63/S32")
	require.NoError(t, err)
	assert.Equal(t, HighLife, r)

	r, err = ParseRule("B33/S2233")
	require.NoError(t, err)
	assert.Equal(t, Conway, r)
}

func TestParseRuleErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"B3",
		"B3/S23/S23",
		"3/23",
		"B9/S23",
		"B0/S23",
		"B3/S2x",
		"S23/B3",
	} {
		_, err := ParseRule(input)
		require.Error(t, err, "input %q", input)
		var rerr *RuleError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, input, rerr.Input)
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "B3/S23", Conway.String())
	assert.Equal(t, "B36/S23", HighLife.String())
	assert.Equal(t, "B2/S", Seeds.String())
	assert.Equal(t, "B3678/S34678", DayAndNight.String())
	assert.Equal(t, "B35678/S5678", Diamoeba.String())
}

func TestRuleStringRoundTrip(t *testing.T) {
	for _, r := range []Rule{Conway, HighLife, Seeds, DayAndNight, Diamoeba, {}} {
		parsed, err := ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestMustRulePanics(t *testing.T) {
	assert.Panics(t, func() { MustRule("not a rule") })
	assert.NotPanics(t, func() { MustRule("B3/S23") })
}

func TestNeighborSet(t *testing.T) {
	s := Counts(2, 3)
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(-1))
	assert.False(t, s.Contains(9))
	assert.False(t, s.Contains(0))
	assert.Equal(t, "23", s.String())

	assert.Equal(t, NeighborSet(0), Counts(12, -3, 0))
}
