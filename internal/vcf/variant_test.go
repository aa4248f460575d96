package vcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Alts(t *testing.T) {
	tests := []struct {
		name     string
		alt      string
		expected []string
	}{
		{"single allele", "C", []string{"C"}},
		{"two alleles", "C,T", []string{"C", "T"}},
		{"three alleles", "AT,A,G", []string{"AT", "A", "G"}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Alt: tt.alt}
			assert.Equal(t, tt.expected, r.Alts())
		})
	}
}

func TestRecord_Fields(t *testing.T) {
	r := &Record{
		Chrom: "1", Pos: "100", ID: "rs1", Ref: "A", Alt: "G",
		Qual: "50", Filter: "PASS", Info: "TC=1", Format: "GT", Sample: "0/1",
	}
	fields := r.Fields()
	assert.Len(t, fields, NumColumns)
	assert.Len(t, Columns, NumColumns)
	assert.Equal(t, "rs1", fields[2])
	assert.Equal(t, "0/1", fields[9])
}

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		expected map[string]string
	}{
		{"coverage", "TC=100;TR=5,10", map[string]string{"TC": "100", "TR": "5,10"}},
		{"flag skipped", "SOMATIC;TC=3", map[string]string{"TC": "3"}},
		{"missing", ".", map[string]string{}},
		{"empty", "", map[string]string{}},
		{"value with equals", "K=a=b", map[string]string{"K": "a=b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInfo(tt.info))
		})
	}
}
