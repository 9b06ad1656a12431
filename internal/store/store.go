// Package store loads the classification ruleset from its YAML document.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"finprep/disclosure-csv/internal/logging"
	"finprep/disclosure-csv/internal/models"
	"finprep/disclosure-csv/internal/parsererror"

	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore loads category rules from a YAML file. Two document shapes are
// accepted:
//
//	categories:
//	  Groceries:
//	    include: [TESCO, SAINSBURY]
//
//	categories:
//	  - name: Groceries
//	    keywords: [TESCO, SAINSBURY]
//
// Rule order follows document order in both shapes. Mapping-shaped documents
// are decoded through yaml.Node rather than a Go map, so that order survives:
// first-match-wins classification makes traversal order part of the contract.
type RuleStore struct {
	Path string
}

// NewRuleStore creates a store reading from the given path.
func NewRuleStore(path string) *RuleStore {
	return &RuleStore{Path: path}
}

// FindConfigFile looks for the ruleset file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "disclosure-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the ordered ruleset. A missing file yields an empty ruleset
// and no error: the classifier then degrades to the default category for every
// vendor. A malformed file returns a RuleError for the caller to log before
// degrading the same way.
func (s *RuleStore) LoadRules() ([]models.Rule, error) {
	path, err := s.FindConfigFile(s.Path)
	if err != nil {
		log.Warn("Categories file not found, classification disabled",
			logging.Field{Key: "file", Value: s.Path})
		return []models.Rule{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parsererror.RuleError{Path: path, Err: err}
	}

	rules, err := parseRules(data)
	if err != nil {
		return nil, &parsererror.RuleError{Path: path, Err: err}
	}

	log.Debug("Loaded category rules",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(rules)})
	return rules, nil
}

func parseRules(data []byte) ([]models.Rule, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []models.Rule{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("ruleset root must be a mapping")
	}

	categories := mappingValue(root, "categories")
	if categories == nil {
		return []models.Rule{}, nil
	}

	switch categories.Kind {
	case yaml.SequenceNode:
		var rules []models.Rule
		if err := categories.Decode(&rules); err != nil {
			return nil, err
		}
		return rules, nil
	case yaml.MappingNode:
		return parseMappingRules(categories)
	default:
		return nil, fmt.Errorf("categories must be a mapping or a sequence")
	}
}

// parseMappingRules walks the mapping node pairwise, preserving document order.
func parseMappingRules(node *yaml.Node) ([]models.Rule, error) {
	rules := make([]models.Rule, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		body := node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("category %q must be a mapping", name)
		}

		include := mappingValue(body, "include")
		if include == nil {
			include = mappingValue(body, "keywords")
		}

		var keywords []string
		if include != nil {
			if err := include.Decode(&keywords); err != nil {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
		}
		rules = append(rules, models.Rule{Category: name, Keywords: keywords})
	}
	return rules, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
