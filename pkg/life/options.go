package life

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	defaultChunkLength       = 64
	defaultParallelThreshold = 1024
)

type options struct {
	chunkLength int
	workers     int
	parallel    parallelMode
	logger      *slog.Logger
}

type parallelMode int

const (
	parallelAuto parallelMode = iota
	parallelOn
	parallelOff
)

// Option configures a Grid at construction time.
type Option func(*options)

func defaultOptions() options {
	return options{
		chunkLength: defaultChunkLength,
		workers:     runtime.NumCPU(),
		parallel:    parallelAuto,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithChunkLength sets the number of rows per work chunk. Values below 1
// fall back to the default.
func WithChunkLength(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.chunkLength = n
		}
	}
}

// WithWorkers caps the number of goroutines used by a parallel step.
// Values below 1 fall back to runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithParallel forces chunk fan-out on or off. Without this option the
// grid fans out only when it has more than 1024 rows.
func WithParallel(on bool) Option {
	return func(o *options) {
		if on {
			o.parallel = parallelOn
		} else {
			o.parallel = parallelOff
		}
	}
}

// WithLogger sets the logger used for step diagnostics. The default
// logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
