package models

// Rule maps a category label to its ordered include-keywords. The ruleset is
// an ordered sequence, not a map: traversal order encodes business priority
// and the first matching category wins.
type Rule struct {
	Category string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
