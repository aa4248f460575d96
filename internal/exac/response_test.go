package exac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-exac/internal/annotate"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want annotate.Annotation
	}{
		{
			name: "full response",
			body: `{
				"allele_freq": 0.000123,
				"vep_annotations": [
					{"SYMBOL": "PPARA", "SIFT": "tolerated(0.32)", "PolyPhen": "benign(0.001)",
					 "major_consequence": "missense_variant", "Existing_variation": "rs1800234"},
					{"SYMBOL": "OTHER", "SIFT": "deleterious(0)"}
				]
			}`,
			want: annotate.Annotation{
				AlleleFreq:        "0.000123",
				Symbol:            "PPARA",
				SIFT:              "tolerated(0.32)",
				PolyPhen:          "benign(0.001)",
				MajorConsequence:  "missense_variant",
				ExistingVariation: "rs1800234",
			},
		},
		{
			name: "partial first entry",
			body: `{"vep_annotations": [{"SYMBOL": "TP53"}]}`,
			want: annotate.Annotation{Symbol: "TP53"},
		},
		{
			name: "empty vep list",
			body: `{"allele_freq": 1, "vep_annotations": []}`,
			want: annotate.Annotation{AlleleFreq: "1"},
		},
		{
			name: "no fields",
			body: `{"any_covered": false}`,
			want: annotate.Annotation{},
		},
		{
			name: "null allele freq",
			body: `{"allele_freq": null}`,
			want: annotate.Annotation{},
		},
		{
			name: "string allele freq",
			body: `{"allele_freq": "0.5"}`,
			want: annotate.Annotation{AlleleFreq: "0.5"},
		},
		{
			name: "small allele freq",
			body: `{"allele_freq": 1e-05}`,
			want: annotate.Annotation{AlleleFreq: "1e-05"},
		},
		{
			name: "integral float allele freq",
			body: `{"allele_freq": 1.0}`,
			want: annotate.Annotation{AlleleFreq: "1.0"},
		},
		{
			name: "integer zero allele freq",
			body: `{"allele_freq": 0}`,
			want: annotate.Annotation{AlleleFreq: "0"},
		},
		{
			name: "exponent allele freq",
			body: `{"allele_freq": 2.5E-5}`,
			want: annotate.Annotation{AlleleFreq: "2.5e-05"},
		},
		{
			name: "vep annotations not a list",
			body: `{"vep_annotations": {"SYMBOL": "TP53"}}`,
			want: annotate.Annotation{},
		},
		{
			name: "numeric field is stringified",
			body: `{"vep_annotations": [{"SYMBOL": "BRCA2", "Existing_variation": 12}]}`,
			want: annotate.Annotation{Symbol: "BRCA2", ExistingVariation: "12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, body := range []string{"<html>busy</html>", "", "[1,2]", "null", `{"allele_freq": 1} {}`} {
		got, err := ParseResponse([]byte(body))
		assert.Error(t, err, body)
		require.NotNil(t, got, body)
		assert.Equal(t, annotate.Annotation{}, *got, body)
	}
}

func TestParseResponse_UndecodableField(t *testing.T) {
	got, err := ParseResponse([]byte(`{"vep_annotations": [{"SYMBOL": "KRAS", "SIFT": {"score": 0.1}}]}`))
	assert.Error(t, err)
	assert.Equal(t, "KRAS", got.Symbol)
	assert.Empty(t, got.SIFT)
}
