package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		ref, alt  string
		wantType  VariantType
		wantIndex int
	}{
		{"identical alleles", "A", "A", Substitution, 0},
		{"snv", "G", "T", Substitution, 0},
		{"deletion", "AT", "A", Deletion, 0},
		{"insertion", "A", "AT", Insertion, 0},
		{"mnv", "AC", "GT", Substitution, 0},
		{"internal deletion", "TCTGCACCGGCA", "CTG", Deletion, 0},
		{"insertion wins over substitutions", "A", "AT,A,G", Insertion, 0},
		{"deletion wins over insertion", "AT", "ATT,A", Deletion, 1},
		{"last index of winning type", "ATG", "A,AT,C", Deletion, 1},
		{"substitution last index", "A", "C,G,T", Substitution, 2},
		{"all three types", "AT", "C,ATG,T", Deletion, 2},
		{"empty alt", "A", "", Deletion, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotIndex := Classify(tt.ref, tt.alt)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantIndex, gotIndex)
		})
	}
}

func TestClassify_IndexInRange(t *testing.T) {
	refs := []string{"A", "AT", "TCTGCACCGGCA", ""}
	alts := []string{"A", "T,AT", "AT,A,G", "TCTGCACCAGCA,T", ",", "G,,C"}

	for _, ref := range refs {
		for _, alt := range alts {
			vt, idx := Classify(ref, alt)
			assert.Contains(t, typePriority, vt, "ref=%q alt=%q", ref, alt)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(strings.Split(alt, ",")), "ref=%q alt=%q", ref, alt)
		}
	}
}

func TestClassify_PriorityIsAlphabetical(t *testing.T) {
	for i := 1; i < len(typePriority); i++ {
		assert.Less(t, string(typePriority[i-1]), string(typePriority[i]))
	}
}
