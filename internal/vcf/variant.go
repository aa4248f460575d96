// Package vcf provides VCF file parsing functionality.
package vcf

import "strings"

// NumColumns is the number of tab-separated columns in a single-sample VCF line.
const NumColumns = 10

// Columns are the input column names, in file order.
var Columns = []string{"CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT", "sample"}

// Record is one single-sample VCF data line. All fields are kept as the raw
// text from the file so the line can be reproduced unchanged.
type Record struct {
	Chrom  string // Chromosome name (e.g., "12", "X", "MT")
	Pos    string // 1-based genomic position
	ID     string // Variant identifier (e.g., rs ID)
	Ref    string // Reference allele
	Alt    string // Comma-separated alternate alleles
	Qual   string // Quality score
	Filter string // Filter status (PASS or filter name)
	Info   string // Semicolon-separated KEY=VALUE pairs
	Format string // FORMAT column
	Sample string // Sample column
	Line   string // Raw line without the trailing newline
}

// Alts returns the alternate alleles split on commas.
func (r *Record) Alts() []string {
	return strings.Split(r.Alt, ",")
}

// Fields returns the ten columns in file order.
func (r *Record) Fields() []string {
	return []string{r.Chrom, r.Pos, r.ID, r.Ref, r.Alt, r.Qual, r.Filter, r.Info, r.Format, r.Sample}
}

// ParseInfo parses the INFO field into a map.
// Flag entries without a value are skipped.
func ParseInfo(info string) map[string]string {
	result := make(map[string]string)
	if info == "" || info == "." {
		return result
	}

	for _, kv := range strings.Split(info, ";") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		result[key] = value
	}

	return result
}
