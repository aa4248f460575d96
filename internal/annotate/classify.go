package annotate

import "strings"

// VariantType is the REF/ALT containment class of a variant.
type VariantType string

// Variant types. The declaration order is also the selection priority and
// matches alphabetical order.
const (
	Deletion     VariantType = "Deletion"
	Insertion    VariantType = "Insertion"
	Substitution VariantType = "Substitution"
)

var typePriority = []VariantType{Deletion, Insertion, Substitution}

// Classify determines the variant type of ref against a comma-separated list
// of alternate alleles and returns it together with the index of the allele
// it was taken from.
//
// Each allele is classed by substring containment: a proper sub-sequence of
// ref is a Deletion, a proper super-sequence is an Insertion, anything else
// (including ref == alt) is a Substitution. When alleles disagree, Deletion
// wins over Insertion over Substitution, and the index is the last allele
// that produced the winning type.
func Classify(ref, alt string) (VariantType, int) {
	lastIndex := make(map[VariantType]int, len(typePriority))

	for i, a := range strings.Split(alt, ",") {
		lastIndex[classifyAllele(ref, a)] = i
	}

	for _, vt := range typePriority {
		if i, ok := lastIndex[vt]; ok {
			return vt, i
		}
	}

	// strings.Split always yields at least one element.
	return Substitution, 0
}

func classifyAllele(ref, alt string) VariantType {
	altInRef := strings.Contains(ref, alt)
	refInAlt := strings.Contains(alt, ref)

	switch {
	case altInRef && !refInAlt:
		return Deletion
	case refInAlt && !altInRef:
		return Insertion
	default:
		return Substitution
	}
}
