// Package classify infers a statement's document type and sub-type from its
// filename, following known broker export naming conventions.
//
// The rules live in rules.json so new export formats can be added without a
// code change. Rules are applied in file order and the first match wins;
// ordering matters because some patterns are prefixes of others
// ("Stocks_Holdings_Statement_" must be tested before "Holdings_Statement_").
package classify

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

//go:embed rules.json
var rulesJSON []byte

type ruleSpec struct {
	Pattern string `json:"pattern"`
	Type    string `json:"type"`
	SubType string `json:"subType"`
}

type rule struct {
	re      *regexp.Regexp
	docType model.DocumentType
	subType string
}

// Classifier matches filenames against an ordered list of pattern rules.
type Classifier struct {
	rules []rule
}

// New builds a Classifier from the embedded rule set.
func New() (*Classifier, error) {
	return Parse(rulesJSON)
}

// Parse builds a Classifier from a JSON rule list. Exposed so rule sets can
// be loaded from external configuration.
func Parse(data []byte) (*Classifier, error) {
	var specs []ruleSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse classifier rules: %w", err)
	}

	rules := make([]rule, 0, len(specs))
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid classifier pattern %q: %w", spec.Pattern, err)
		}
		rules = append(rules, rule{
			re:      re,
			docType: model.DocumentType(spec.Type),
			subType: spec.SubType,
		})
	}

	return &Classifier{rules: rules}, nil
}

// Classify returns the document type and sub-type inferred from filename, or
// ("", "") when no rule matches. This is only a fallback: an explicitly
// supplied type always takes precedence over the inferred one.
func (c *Classifier) Classify(filename string) (model.DocumentType, string) {
	for _, r := range c.rules {
		if r.re.MatchString(filename) {
			return r.docType, r.subType
		}
	}
	return "", ""
}
