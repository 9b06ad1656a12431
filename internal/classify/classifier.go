// Package classify assigns category labels to vendors using ordered
// keyword-matching rules.
package classify

import (
	"strings"

	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/models"
)

// Classifier applies an ordered ruleset to vendor strings. Matching is a
// case-insensitive substring search; rules are tried in ruleset order and
// keywords in listed order, and the first hit wins. There is no scoring and
// no longest-match preference, so results stay predictable and auditable.
type Classifier struct {
	rules  []models.Rule
	logger logging.Logger
}

// New creates a Classifier over the given ordered ruleset.
func New(rules []models.Rule, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{rules: rules, logger: logger}
}

// HasRules reports whether any rules are loaded. With no rules every vendor
// resolves to the default category.
func (c *Classifier) HasRules() bool {
	return len(c.rules) > 0
}

// Classify returns the category of the first rule with a keyword contained in
// the vendor string, or defaultCategory when nothing matches.
func (c *Classifier) Classify(vendor, defaultCategory string) string {
	category, matched := Classify(vendor, c.rules, defaultCategory)
	if matched {
		c.logger.Debug("Vendor classified",
			logging.Field{Key: "vendor", Value: vendor},
			logging.Field{Key: "category", Value: category})
	}
	return category
}

// Classify is the pure matching function behind Classifier. The boolean
// reports whether a rule matched or the default was returned.
func Classify(vendor string, rules []models.Rule, defaultCategory string) (string, bool) {
	upper := strings.ToUpper(vendor)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(upper, strings.ToUpper(keyword)) {
				return rule.Category, true
			}
		}
	}
	return defaultCategory, false
}
