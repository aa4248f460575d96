package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/brentp/xopen"
	"go.uber.org/zap"

	"github.com/inodb/vibe-exac/internal/annotate"
	"github.com/inodb/vibe-exac/internal/duckdb"
	"github.com/inodb/vibe-exac/internal/exac"
	"github.com/inodb/vibe-exac/internal/output"
	"github.com/inodb/vibe-exac/internal/vcf"
)

// annotateOptions holds everything a run needs.
type annotateOptions struct {
	InputPath  string
	OutputPath string
	ExacURL    string
	Policy     exac.Policy
	Cache      bool // memoise lookups of identical variants
	Offline    bool // no remote lookups at all
}

// session owns the resources held for the duration of a run.
type session struct {
	parser *vcf.Parser
	out    *xopen.Writer
	store  *duckdb.Store // nil when the lookup memo is disabled
}

// openSession opens the input, output and lookup memo. Anything already
// opened is released if a later step fails.
func openSession(opts annotateOptions) (s *session, err error) {
	s = &session{}
	defer func() {
		if err != nil {
			s.Close()
			s = nil
		}
	}()

	if s.parser, err = vcf.NewParser(opts.InputPath); err != nil {
		return s, fmt.Errorf("open %s: %w", opts.InputPath, err)
	}
	if s.out, err = xopen.Wopen(opts.OutputPath); err != nil {
		return s, fmt.Errorf("open %s: %w", opts.OutputPath, err)
	}
	if opts.Cache && !opts.Offline {
		if s.store, err = duckdb.Open(); err != nil {
			return s, fmt.Errorf("open lookup cache: %w", err)
		}
	}
	return s, nil
}

// Close releases every resource the session holds.
func (s *session) Close() error {
	var errs []error
	if s.parser != nil {
		errs = append(errs, s.parser.Close())
	}
	if s.out != nil {
		errs = append(errs, s.out.Close())
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	return errors.Join(errs...)
}

// lookup builds the annotation lookup for the session.
func (s *session) lookup(opts annotateOptions, logger *zap.Logger) annotate.Lookup {
	if opts.Offline {
		return nil
	}

	client := exac.NewClient(opts.ExacURL, opts.Policy)
	client.SetLogger(logger)
	if s.store == nil {
		return client
	}

	cached := duckdb.NewCachedLookup(s.store, client)
	cached.SetLogger(logger)
	return cached
}

// runAnnotate annotates opts.InputPath into opts.OutputPath.
func runAnnotate(ctx context.Context, opts annotateOptions, logger *zap.Logger) (err error) {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing files: %w", cerr)
		}
	}()

	logger.Info("annotating",
		zap.String("input", opts.InputPath),
		zap.String("output", opts.OutputPath),
		zap.Bool("offline", opts.Offline))

	ann := annotate.NewAnnotator(s.lookup(opts, logger))
	ann.SetLogger(logger)

	writer := output.NewTabWriter(s.out)
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return ann.AnnotateAll(ctx, s.parser, writer)
}
