package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-exac/internal/annotate"
)

// WriteAnnotation stores the annotation fetched for key, replacing any
// previous entry.
func (s *Store) WriteAnnotation(key string, ann *annotate.Annotation) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO lookup_annotations
		(lookup_key, allele_freq, symbol, sift, polyphen, major_consequence, existing_variation)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		key, ann.AlleleFreq, ann.Symbol, ann.SIFT, ann.PolyPhen, ann.MajorConsequence, ann.ExistingVariation)
	if err != nil {
		return fmt.Errorf("write annotation %s: %w", key, err)
	}
	return nil
}

// LookupAnnotation returns the stored annotation for key.
// The boolean is false when nothing is stored.
func (s *Store) LookupAnnotation(key string) (*annotate.Annotation, bool, error) {
	var ann annotate.Annotation
	err := s.db.QueryRow(`SELECT
		allele_freq, symbol, sift, polyphen, major_consequence, existing_variation
		FROM lookup_annotations
		WHERE lookup_key = ?`, key).Scan(
		&ann.AlleleFreq, &ann.Symbol, &ann.SIFT, &ann.PolyPhen, &ann.MajorConsequence, &ann.ExistingVariation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query annotation %s: %w", key, err)
	}
	return &ann, true, nil
}

// AnnotationCount returns the number of stored annotations.
func (s *Store) AnnotationCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM lookup_annotations").Scan(&n); err != nil {
		return 0, fmt.Errorf("count annotations: %w", err)
	}
	return n, nil
}

// CachedLookup serves repeated keys from a Store and forwards misses to
// another Lookup. Failed lookups are not stored.
type CachedLookup struct {
	store  *Store
	next   annotate.Lookup
	logger *zap.Logger
}

// NewCachedLookup wraps next with the store.
func NewCachedLookup(store *Store, next annotate.Lookup) *CachedLookup {
	return &CachedLookup{
		store:  store,
		next:   next,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for cache warnings.
func (c *CachedLookup) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Lookup implements annotate.Lookup.
func (c *CachedLookup) Lookup(ctx context.Context, key annotate.LookupKey) (*annotate.Annotation, error) {
	k := key.String()

	ann, ok, err := c.store.LookupAnnotation(k)
	if err != nil {
		c.logger.Warn("annotation cache read failed", zap.String("key", k), zap.Error(err))
	} else if ok {
		c.logger.Debug("annotation cache hit", zap.String("key", k))
		return ann, nil
	}

	ann, err = c.next.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if ann == nil {
		ann = &annotate.Annotation{}
	}

	if err := c.store.WriteAnnotation(k, ann); err != nil {
		c.logger.Warn("annotation cache write failed", zap.String("key", k), zap.Error(err))
	}
	return ann, nil
}
