package exac

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/mitchellh/mapstructure"

	"github.com/inodb/vibe-exac/internal/annotate"
)

// vepAnnotation is the subset of a vep_annotations entry that is reported.
type vepAnnotation struct {
	Symbol            string `mapstructure:"SYMBOL"`
	SIFT              string `mapstructure:"SIFT"`
	PolyPhen          string `mapstructure:"PolyPhen"`
	MajorConsequence  string `mapstructure:"major_consequence"`
	ExistingVariation string `mapstructure:"Existing_variation"`
}

// ParseResponse extracts the reported fields from a variant lookup body.
// Missing fields are left empty. allele_freq comes from the top level; the
// VEP fields come from the first vep_annotations entry only.
//
// The returned error reports a body that is not JSON or a first
// vep_annotations entry that could not be fully decoded; in the latter case
// the annotation holds whatever was decoded.
func ParseResponse(body []byte) (*annotate.Annotation, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	parsed, err := gabs.ParseJSONDecoder(dec)
	if err != nil {
		return &annotate.Annotation{}, fmt.Errorf("parse lookup response: %w", err)
	}
	if dec.More() {
		return &annotate.Annotation{}, fmt.Errorf("parse lookup response: trailing data after JSON value")
	}

	if _, ok := parsed.Data().(map[string]any); !ok {
		return &annotate.Annotation{}, fmt.Errorf("parse lookup response: not a JSON object")
	}

	ann := &annotate.Annotation{
		AlleleFreq: formatScalar(parsed.S("allele_freq").Data()),
	}

	first, ok := parsed.S("vep_annotations").Index(0).Data().(map[string]any)
	if !ok {
		return ann, nil
	}

	var vep vepAnnotation
	decodeErr := mapstructure.WeakDecode(first, &vep)

	ann.Symbol = vep.Symbol
	ann.SIFT = vep.SIFT
	ann.PolyPhen = vep.PolyPhen
	ann.MajorConsequence = vep.MajorConsequence
	ann.ExistingVariation = vep.ExistingVariation

	if decodeErr != nil {
		return ann, fmt.Errorf("decode vep annotation: %w", decodeErr)
	}
	return ann, nil
}

// formatScalar renders a decoded JSON scalar; null and missing become empty.
// Integer literals are kept as written and other numbers go through
// annotate.FormatFloat.
func formatScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		if !strings.ContainsAny(x.String(), ".eE") {
			return x.String()
		}
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		return annotate.FormatFloat(f)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
