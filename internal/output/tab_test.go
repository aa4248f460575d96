package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-exac/internal/annotate"
	"github.com/inodb/vibe-exac/internal/vcf"
)

func TestTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	want := "CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tsample\t" +
		"Variant type\tTotal coverage (TC)\tTotal reads supporting variant (TR)\tTR/TC\t" +
		"Allele freq\tSYMBOL\tSIFT\tPolyPhen\tmajor_consequence\tExisting_variation\n"
	assert.Equal(t, want, buf.String())
	assert.Len(t, w.Columns(), 20)
}

func TestTabWriter_Write_Annotated(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	rec := &vcf.Record{
		Chrom: "22", Pos: "46615880", ID: ".", Ref: "T", Alt: "C",
		Qual: "2965", Filter: "PASS", Info: "TC=100;TR=10", Format: "GT", Sample: "0/1",
	}
	ratio := 0.1
	res := &annotate.Result{
		VariantType:     annotate.Substitution,
		TotalCoverage:   "100",
		SupportingReads: "10",
		SupportRatio:    &ratio,
		Annotation: annotate.Annotation{
			AlleleFreq:        "0.000123",
			Symbol:            "PPARA",
			SIFT:              "tolerated(0.32)",
			PolyPhen:          "benign(0.001)",
			MajorConsequence:  "missense_variant",
			ExistingVariation: "rs1800234",
		},
	}

	require.NoError(t, w.Write(rec, res))
	require.NoError(t, w.Flush())

	fields := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	require.Len(t, fields, 20)
	assert.Equal(t, rec.Fields(), fields[:10])
	assert.Equal(t, []string{
		"Substitution", "100", "10", "0.1",
		"0.000123", "PPARA", "tolerated(0.32)", "benign(0.001)", "missense_variant", "rs1800234",
	}, fields[10:])
}

func TestTabWriter_Write_AbsentFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	rec := &vcf.Record{
		Chrom: "MT", Pos: "150", ID: ".", Ref: "T", Alt: "C",
		Qual: ".", Filter: "PASS", Info: "DP=3", Format: "GT", Sample: "1/1",
	}
	res := &annotate.Result{VariantType: annotate.Substitution}

	require.NoError(t, w.Write(rec, res))
	require.NoError(t, w.Flush())

	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 20)
	assert.Equal(t, "Substitution", fields[10])
	for i := 11; i < 20; i++ {
		assert.Empty(t, fields[i], "column %d", i)
	}
	assert.NotContains(t, line, "-\t")
}

func TestTabWriter_Write_IntegralRatio(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	rec := &vcf.Record{
		Chrom: "1", Pos: "931393", ID: ".", Ref: "G", Alt: "T",
		Qual: "2965", Filter: "PASS", Info: "TC=40;TR=40", Format: "GT", Sample: "1/1",
	}
	ratio := 1.0
	res := &annotate.Result{
		VariantType:     annotate.Substitution,
		TotalCoverage:   "40",
		SupportingReads: "40",
		SupportRatio:    &ratio,
	}

	require.NoError(t, w.Write(rec, res))
	require.NoError(t, w.Flush())

	fields := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	require.Len(t, fields, 20)
	assert.Equal(t, "1.0", fields[13])
}
