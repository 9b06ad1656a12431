package store

import (
	"os"
	"path/filepath"
	"testing"

	"finprep/disclosure-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRuleset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRulesMappingShapePreservesOrder(t *testing.T) {
	path := writeRuleset(t, `
categories:
  Housing:
    include: [RENT, MORTGAGE]
  Utilities:
    include: [BRITISH GAS]
  Groceries:
    include: [TESCO]
`)

	rules, err := NewRuleStore(path).LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 3)

	// Document order survives, even though the source shape is a mapping.
	assert.Equal(t, "Housing", rules[0].Category)
	assert.Equal(t, []string{"RENT", "MORTGAGE"}, rules[0].Keywords)
	assert.Equal(t, "Utilities", rules[1].Category)
	assert.Equal(t, "Groceries", rules[2].Category)
}

func TestLoadRulesSequenceShape(t *testing.T) {
	path := writeRuleset(t, `
categories:
  - name: Transport
    keywords: [UBER, TFL]
  - name: Leisure
    keywords: [NETFLIX]
`)

	rules, err := NewRuleStore(path).LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Transport", rules[0].Category)
	assert.Equal(t, []string{"UBER", "TFL"}, rules[0].Keywords)
}

func TestLoadRulesMissingFile(t *testing.T) {
	// A missing ruleset degrades to an empty ruleset, never an error.
	rules, err := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml")).LoadRules()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRulesMalformed(t *testing.T) {
	path := writeRuleset(t, "categories: [not: [valid")

	_, err := NewRuleStore(path).LoadRules()
	require.Error(t, err)

	var ruleErr *parsererror.RuleError
	assert.ErrorAs(t, err, &ruleErr)
}

func TestLoadRulesCategoryWithoutKeywords(t *testing.T) {
	path := writeRuleset(t, `
categories:
  Empty: {}
  Groceries:
    include: [TESCO]
`)

	rules, err := NewRuleStore(path).LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Empty(t, rules[0].Keywords)
	assert.Equal(t, "Groceries", rules[1].Category)
}
