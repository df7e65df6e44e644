// Package runner drives a generation run: it builds the selected strategies,
// generates their batches and writes the report to stdout and the output file.
package runner

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/guardiancrow/randomstring/internal/config"
	"github.com/guardiancrow/randomstring/internal/generator"
	"github.com/guardiancrow/randomstring/internal/metrics"
	"github.com/guardiancrow/randomstring/internal/report"
)

// Runner represents one invocation of the generator.
type Runner struct {
	cfg        config.Config
	stdout     io.Writer
	opts       []generator.Option
	strategies []generator.Strategy
	log        zerolog.Logger
}

// streamBuffer is how many generated strings a strategy may hold before the writer takes them.
const streamBuffer = 64

// stream carries the strings of one strategy in generation order. err is set before strs is closed.
type stream struct {
	strs chan string
	err  error
}

// New creates a Runner for cfg writing to stdout. opts are passed to every strategy
// after the seed option derived from cfg.
func New(cfg config.Config, stdout io.Writer, opts ...generator.Option) (*Runner, error) {
	if cfg.SeedSet {
		opts = append([]generator.Option{generator.WithSeed(cfg.Seed)}, opts...)
	}

	r := &Runner{
		cfg:    cfg,
		stdout: stdout,
		opts:   opts,
		log:    log.With().Str("run", uuid.NewString()).Logger(),
	}

	// keep the fixed order whatever order the strategies were selected in
	for _, name := range generator.Names() {
		if !slices.Contains(cfg.Strategies, name) {
			continue
		}

		s, err := generator.New(name, opts...)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		r.strategies = append(r.strategies, s)
	}

	if len(r.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	return r, nil
}

// Strategies returns the names of the strategies this Runner runs, in order.
func (r *Runner) Strategies() []string {
	names := make([]string, 0, len(r.strategies))
	for _, s := range r.strategies {
		names = append(names, s.Name())
	}

	return names
}

// Quick prints a single std-random string of the configured length, nothing else.
func (r *Runner) Quick() error {
	s, err := generator.New(generator.NameStdRandom, r.opts...)
	if err != nil {
		return err //nolint:wrapcheck
	}

	str, err := s.Generate(r.cfg.Length)
	if err != nil {
		return err //nolint:wrapcheck
	}

	w := report.NewWriter(r.stdout)
	if err := w.Line(str); err != nil {
		return err //nolint:wrapcheck
	}

	return w.Flush() //nolint:wrapcheck
}

// Run generates cfg.Count strings per strategy and writes every section to stdout and
// the output file, which is truncated first. Sections are written in the fixed strategy
// order; a failing strategy ends the run after the sections before it were written.
func (r *Runner) Run(ctx context.Context) (err error) {
	if dump, derr := config.DumpConfig(r.cfg); derr == nil {
		r.log.Debug().Str("config", dump).Msg("effective config")
	}

	settings := report.NewWriter(r.stdout)
	if err = settings.Settings(r.cfg.Length, r.cfg.Count, r.cfg.Output); err != nil {
		return err //nolint:wrapcheck
	}

	if err = settings.Flush(); err != nil {
		return err //nolint:wrapcheck
	}

	f, err := os.Create(r.cfg.Output)
	if err != nil {
		return errors.Wrap(ErrOutputFile, err.Error())
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(ErrOutputFile, cerr.Error())
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	streams, g := r.generate(ctx)

	defer func() {
		cancel()

		if werr := g.Wait(); werr != nil {
			r.log.Debug().Err(werr).Msg("a strategy stopped early")
		}
	}()

	out := report.NewWriter(r.stdout, f)

	for i, s := range r.strategies {
		if err = r.writeSection(out, s.Name(), streams[i]); err != nil {
			return err
		}
	}

	r.log.Info().
		Int("length", r.cfg.Length).
		Int("count", r.cfg.Count).
		Strs("strategies", r.Strategies()).
		Str("output", r.cfg.Output).
		Msg("run complete")

	if r.cfg.MetricsFile != "" {
		return metrics.WriteTextfile(r.cfg.MetricsFile) //nolint:wrapcheck
	}

	return nil
}

// generate starts one producer per strategy. Each producer owns its entropy sources and
// blocks once streamBuffer strings wait for the writer, so memory does not grow with Count.
func (r *Runner) generate(ctx context.Context) ([]*stream, *errgroup.Group) {
	g := new(errgroup.Group)
	streams := make([]*stream, len(r.strategies))

	for i, s := range r.strategies {
		st := &stream{strs: make(chan string, streamBuffer)}
		streams[i] = st

		g.Go(func() error {
			defer close(st.strs)

			st.err = generator.Stream(ctx, s, r.cfg.Length, r.cfg.Count, func(str string) error {
				select {
				case st.strs <- str:
					return nil
				case <-ctx.Done():
					return errors.Wrapf(ctx.Err(), "%s: batch interrupted", s.Name())
				}
			})

			return st.err
		})
	}

	return streams, g
}

// writeSection copies one stream into its section. The header is written with the first
// string, so a strategy failing before producing anything leaves no section behind.
func (r *Runner) writeSection(out *report.Writer, name string, st *stream) error {
	started, empty := false, false

	start := func() error {
		if started {
			return nil
		}

		started = true

		if err := out.Header(name); err != nil {
			return errors.Wrap(ErrOutputFile, err.Error())
		}

		return nil
	}

	for str := range st.strs {
		if err := start(); err != nil {
			return err
		}

		empty = empty || str == ""

		if err := out.Line(str); err != nil {
			return errors.Wrap(ErrOutputFile, err.Error())
		}
	}

	if st.err != nil {
		r.log.Error().Err(st.err).Str("strategy", name).Msg("generation failed")

		if err := out.Flush(); err != nil {
			r.log.Debug().Err(err).Msg("flush after failure")
		}

		return st.err
	}

	if err := start(); err != nil {
		return err
	}

	if empty && r.cfg.Length > 0 {
		r.log.Warn().Str("strategy", name).Msg("entropy source unavailable, strings are empty")
	}

	if err := out.Flush(); err != nil {
		return errors.Wrap(ErrOutputFile, err.Error())
	}

	return nil
}
