package totalistic

import (
	"strconv"

	"lifegame/internal/core"
	pkgcore "lifegame/pkg/core"
	"lifegame/pkg/life"
)

// Sim adapts a packed life.Grid to the simulation registry. Any two-state
// outer-totalistic rule can be run through it; the registry entries below
// cover the well known ones.
type Sim struct {
	name    string
	grid    *life.Grid
	display *core.ByteGrid
	density float64
	cfg     Config
}

// New builds a Sim running rule with the provided configuration. The
// config's Rule field, when set and parseable, overrides rule.
func New(name string, rule life.Rule, cfg Config) *Sim {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Rule != "" {
		if parsed, err := life.ParseRule(cfg.Rule); err == nil {
			rule = parsed
		}
	}

	var opts []life.Option
	if cfg.ChunkLength > 0 {
		opts = append(opts, life.WithChunkLength(cfg.ChunkLength))
	}
	if cfg.Workers > 0 {
		opts = append(opts, life.WithWorkers(cfg.Workers))
	}
	if cfg.HasParallel {
		opts = append(opts, life.WithParallel(cfg.Parallel))
	}

	grid, err := life.NewGrid(cfg.Height, cfg.Width, rule, opts...)
	if err != nil {
		panic(err)
	}
	return &Sim{
		name:    name,
		grid:    grid,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		density: cfg.Density,
		cfg:     cfg,
	}
}

// Name identifies the simulation.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.grid.Width(), H: s.grid.Height()}
}

// Rule returns the rule the sim is running.
func (s *Sim) Rule() life.Rule { return s.grid.Rule() }

// Reset randomizes the grid deterministically from seed at the current
// density.
func (s *Sim) Reset(seed int64) {
	rng := pkgcore.NewRNG(seed)
	s.grid.Randomize(rng.Source(), s.density)
}

// Step advances the automaton by one generation.
func (s *Sim) Step() {
	s.grid.Step()
}

// Cells unpacks the packed grid into the display buffer and returns it.
func (s *Sim) Cells() []uint8 {
	s.grid.ReadCells(s.display.Cells())
	return s.display.Cells()
}

// Generation returns the number of completed steps.
func (s *Sim) Generation() uint64 { return s.grid.Generation() }

// Population counts the live cells.
func (s *Sim) Population() int { return s.grid.Population() }

// Parameters exposes the current tunables for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Seeding",
				Params: []core.Parameter{
					{
						Key:         "density",
						Label:       "Density",
						Type:        core.ParamTypeFloat,
						Value:       strconv.FormatFloat(s.density, 'f', 2, 64),
						Description: "fraction of live cells on reset",
					},
				},
			},
		},
	}
}

// ParameterControls lists the HUD-adjustable controls.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "density",
			Label:  "Density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable. The new density takes effect
// on the next Reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	s.density = value
	return true
}

func register(name, rule string) {
	r := life.MustRule(rule)
	core.Register(name, func(cfg map[string]string) core.Sim {
		return New(name, r, FromMap(cfg))
	})
}

func init() {
	register("life", "B3/S23")
	register("highlife", "B36/S23")
	register("seeds", "B2/S")
	register("daynight", "B3678/S34678")
}
