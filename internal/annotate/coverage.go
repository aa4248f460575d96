package annotate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inodb/vibe-exac/internal/vcf"
)

// INFO keys carrying read counts.
const (
	InfoTotalCoverage   = "TC"
	InfoSupportingReads = "TR"
)

// ExtractCoverage returns the total coverage (TC) and the supporting read
// count (TR) of the allele at altIndex from a raw INFO field. TR holds one
// comma-separated count per alternate allele. ok is false, and both values
// empty, when either key is missing or TR has no entry for altIndex.
func ExtractCoverage(info string, altIndex int) (tc, tr string, ok bool) {
	fields := vcf.ParseInfo(info)

	tc, hasTC := fields[InfoTotalCoverage]
	trList, hasTR := fields[InfoSupportingReads]
	if !hasTC || !hasTR {
		return "", "", false
	}

	counts := strings.Split(trList, ",")
	if altIndex < 0 || altIndex >= len(counts) {
		return "", "", false
	}

	return tc, counts[altIndex], true
}

// SupportRatio computes tr/tc.
func SupportRatio(tc, tr string) (float64, error) {
	coverage, err := strconv.ParseFloat(tc, 64)
	if err != nil {
		return 0, fmt.Errorf("parse total coverage %q: %w", tc, err)
	}
	reads, err := strconv.ParseFloat(tr, 64)
	if err != nil {
		return 0, fmt.Errorf("parse supporting reads %q: %w", tr, err)
	}
	if coverage == 0 {
		return 0, fmt.Errorf("total coverage is zero")
	}
	return reads / coverage, nil
}
