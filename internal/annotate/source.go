package annotate

import "context"

// Lookup fetches the annotation of a single variant.
type Lookup interface {
	Lookup(ctx context.Context, key LookupKey) (*Annotation, error)
}

// DerivedColumns are the columns appended to each input record, in order.
var DerivedColumns = []string{
	"Variant type",
	"Total coverage (TC)",
	"Total reads supporting variant (TR)",
	"TR/TC",
	"Allele freq",
	"SYMBOL",
	"SIFT",
	"PolyPhen",
	"major_consequence",
	"Existing_variation",
}
