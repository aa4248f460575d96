// Package annotate classifies variant records and enriches them with
// population-frequency and functional-impact annotations.
package annotate

import (
	"strconv"
	"strings"
)

// Annotation holds the fields fetched for one variant from the lookup service.
// Absent values are empty strings.
type Annotation struct {
	AlleleFreq        string // Population allele frequency
	Symbol            string // Gene symbol
	SIFT              string // SIFT prediction
	PolyPhen          string // PolyPhen prediction
	MajorConsequence  string // e.g. missense_variant, intron_variant
	ExistingVariation string // e.g. dbSNP rs ID
}

// Result holds everything derived for one record.
type Result struct {
	VariantType     VariantType
	AltIndex        int      // index into the record's split ALT list
	TotalCoverage   string   // TC, empty if absent
	SupportingReads string   // TR of the selected allele, empty if absent
	SupportRatio    *float64 // TR/TC, nil if it could not be computed
	Annotation      Annotation
}

// annotatedChroms are the chromosomes sent to the lookup service.
var annotatedChroms = func() map[string]bool {
	m := map[string]bool{"X": true, "Y": true}
	for i := 1; i <= 22; i++ {
		m[strconv.Itoa(i)] = true
	}
	return m
}()

// IsAnnotatedChrom reports whether chrom is one of the 24 chromosomes
// (1-22, X, Y) eligible for remote annotation. Names must match exactly.
func IsAnnotatedChrom(chrom string) bool {
	return annotatedChroms[chrom]
}

// LookupKey identifies a single-allele variant for the lookup service.
type LookupKey struct {
	Chrom string
	Pos   string
	Ref   string
	Alt   string // single selected allele, not the comma list
}

// String formats the key as CHROM-POS-REF-ALT.
func (k LookupKey) String() string {
	return strings.Join([]string{k.Chrom, k.Pos, k.Ref, k.Alt}, "-")
}

