package annotate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-exac/internal/vcf"
)

// Annotator classifies records, extracts coverage and fetches remote
// annotations one record at a time.
type Annotator struct {
	lookup Lookup
	logger *zap.Logger
}

// NewAnnotator creates a new annotator backed by the given lookup.
// A nil lookup disables remote annotation for every record.
func NewAnnotator(l Lookup) *Annotator {
	return &Annotator{
		lookup: l,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Annotate derives the local fields of a record and, for chromosomes 1-22,
// X and Y, fetches its remote annotation. Only lookup failures are returned;
// coverage problems are logged and leave the affected fields empty.
func (a *Annotator) Annotate(ctx context.Context, rec *vcf.Record) (*Result, error) {
	vt, altIndex := Classify(rec.Ref, rec.Alt)
	res := &Result{
		VariantType: vt,
		AltIndex:    altIndex,
	}

	if tc, tr, ok := ExtractCoverage(rec.Info, altIndex); ok {
		res.TotalCoverage = tc
		res.SupportingReads = tr
	}

	ratio, err := SupportRatio(res.TotalCoverage, res.SupportingReads)
	if err != nil {
		a.logger.Warn("cannot compute TR/TC",
			zap.String("chrom", rec.Chrom),
			zap.String("pos", rec.Pos),
			zap.String("tc", res.TotalCoverage),
			zap.String("tr", res.SupportingReads),
			zap.Error(err))
	} else {
		res.SupportRatio = &ratio
	}

	if a.lookup == nil || !IsAnnotatedChrom(rec.Chrom) {
		return res, nil
	}

	key := LookupKey{
		Chrom: rec.Chrom,
		Pos:   rec.Pos,
		Ref:   rec.Ref,
		Alt:   rec.Alts()[altIndex],
	}
	ann, err := a.lookup.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if ann != nil {
		res.Annotation = *ann
	}

	return res, nil
}

// AnnotateAll annotates every record from a parser in input order and writes
// one row per record. The first read or lookup error stops the run; rows
// already written are flushed before it is returned.
func (a *Annotator) AnnotateAll(ctx context.Context, parser vcf.RecordParser, writer AnnotationWriter) error {
	variantCount := 0

	for {
		rec, err := parser.Next()
		if err != nil {
			return a.abort(writer, fmt.Errorf("read variant: %w", err))
		}
		if rec == nil {
			break
		}
		variantCount++
		a.logger.Info("processing variant", zap.Int("variant", variantCount))

		res, err := a.Annotate(ctx, rec)
		if err != nil {
			return a.abort(writer, fmt.Errorf("annotate variant %d at line %d (%s:%s): %w",
				variantCount, parser.LineNumber(), rec.Chrom, rec.Pos, err))
		}

		if err := writer.Write(rec, res); err != nil {
			return fmt.Errorf("write annotation: %w", err)
		}
	}

	if variantCount == 0 {
		a.logger.Info("0 variants processed")
	}

	return writer.Flush()
}

func (a *Annotator) abort(writer AnnotationWriter, err error) error {
	if ferr := writer.Flush(); ferr != nil {
		a.logger.Warn("failed to flush output", zap.Error(ferr))
	}
	return err
}

// AnnotationWriter defines the interface for writing annotated records.
type AnnotationWriter interface {
	WriteHeader() error
	Write(rec *vcf.Record, res *Result) error
	Flush() error
}
