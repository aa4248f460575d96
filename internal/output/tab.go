// Package output provides annotation output formatters.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/inodb/vibe-exac/internal/annotate"
	"github.com/inodb/vibe-exac/internal/vcf"
)

// TabWriter writes annotated records in tab-delimited format: the ten input
// columns followed by the derived columns. Absent values are empty strings.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	columns := make([]string, 0, len(vcf.Columns)+len(annotate.DerivedColumns))
	columns = append(columns, vcf.Columns...)
	columns = append(columns, annotate.DerivedColumns...)

	return &TabWriter{
		w:       bufio.NewWriter(w),
		columns: columns,
	}
}

// Columns returns the header column names.
func (tw *TabWriter) Columns() []string {
	return tw.columns
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single annotated record.
func (tw *TabWriter) Write(rec *vcf.Record, res *annotate.Result) error {
	ratio := ""
	if res.SupportRatio != nil {
		ratio = annotate.FormatFloat(*res.SupportRatio)
	}

	ann := res.Annotation
	values := append(rec.Fields(),
		string(res.VariantType),
		res.TotalCoverage,
		res.SupportingReads,
		ratio,
		ann.AlleleFreq,
		ann.Symbol,
		ann.SIFT,
		ann.PolyPhen,
		ann.MajorConsequence,
		ann.ExistingVariation,
	)

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
