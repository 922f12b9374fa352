package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alltechcamoapa/Softsupport-sub000/factory"
	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/settlement"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefaultRules(t *testing.T) {
	rules := factory.DefaultRules()

	assert.True(t, rules.Withholding.EmployeeRate.Equal(labor.MustDecimal("0.07")))
	assert.True(t, rules.Withholding.EmployerRate.Equal(labor.MustDecimal("0.215")))

	require.Len(t, rules.Withholding.Brackets, 5)
	last := rules.Withholding.Brackets[len(rules.Withholding.Brackets)-1]
	assert.True(t, last.Open, "top band must be open-ended")
	assert.True(t, last.Floor.Equal(labor.MustDecimal("500000")))

	assert.True(t, rules.Settlement.Eligible(settlement.ReasonWithoutCause))
	assert.True(t, rules.Settlement.Eligible(settlement.ReasonResignation))
	assert.False(t, rules.Settlement.Eligible(settlement.ReasonWithCause))
	assert.True(t, rules.Settlement.CapMonths.Equal(labor.MustDecimal("5")))
}

// =============================================================================
// OVERLAY PARSING
// =============================================================================

func TestParseRules_EmptyKeepsDefaults(t *testing.T) {
	rules, err := factory.ParseRules(nil)
	require.NoError(t, err)
	assert.True(t, rules.Withholding.EmployeeRate.Equal(labor.MustDecimal("0.07")))

	rules, err = factory.ParseRules([]byte(`{}`))
	require.NoError(t, err)
	assert.Len(t, rules.Withholding.Brackets, 5)
}

func TestParseRules_PartialOverlay(t *testing.T) {
	// GIVEN: A document correcting only the employee INSS rate
	// WHEN: Parsing
	// THEN: The rate changes, brackets and severance keep their defaults

	doc := []byte(`{
		"social_security": {"employee_rate": "0.0625", "employer_rate": "0.215"}
	}`)

	rules, err := factory.ParseRules(doc)
	require.NoError(t, err)
	assert.True(t, rules.Withholding.EmployeeRate.Equal(labor.MustDecimal("0.0625")))
	assert.Len(t, rules.Withholding.Brackets, 5)
	assert.True(t, rules.Settlement.Eligible(settlement.ReasonResignation))
}

func TestParseRules_CustomBrackets(t *testing.T) {
	doc := []byte(`{
		"income_tax_brackets": [
			{"floor": "0", "ceiling": "150000", "rate": "0"},
			{"floor": "150000", "rate": "0.25"}
		]
	}`)

	rules, err := factory.ParseRules(doc)
	require.NoError(t, err)
	require.Len(t, rules.Withholding.Brackets, 2)
	assert.True(t, rules.Withholding.Brackets[1].Open)
	assert.True(t, rules.Withholding.Brackets[1].Rate.Equal(labor.MustDecimal("0.25")))
}

func TestParseRules_SeveranceOverlay(t *testing.T) {
	doc := []byte(`{
		"severance": {
			"eligible_reasons": ["termination_without_cause"],
			"cap_months": "6"
		}
	}`)

	rules, err := factory.ParseRules(doc)
	require.NoError(t, err)
	assert.False(t, rules.Settlement.Eligible(settlement.ReasonResignation))
	assert.True(t, rules.Settlement.Eligible(settlement.ReasonWithoutCause))
	assert.True(t, rules.Settlement.CapMonths.Equal(labor.MustDecimal("6")))
	// Omitted tier fields keep defaults.
	assert.True(t, rules.Settlement.TierThresholdYears.Equal(labor.MustDecimal("3")))
}

// =============================================================================
// REJECTED DOCUMENTS
// =============================================================================

func TestParseRules_LastBracketMustBeOpen(t *testing.T) {
	doc := []byte(`{
		"income_tax_brackets": [
			{"floor": "0", "ceiling": "100000", "rate": "0"},
			{"floor": "100000", "ceiling": "200000", "rate": "0.15"}
		]
	}`)

	_, err := factory.ParseRules(doc)
	assert.Error(t, err)
}

func TestParseRules_CeilingBelowFloor(t *testing.T) {
	doc := []byte(`{
		"income_tax_brackets": [
			{"floor": "100000", "ceiling": "50000", "rate": "0.15"},
			{"floor": "100000", "rate": "0.30"}
		]
	}`)

	_, err := factory.ParseRules(doc)
	assert.Error(t, err)
}

func TestParseRules_UnknownReason(t *testing.T) {
	doc := []byte(`{"severance": {"eligible_reasons": ["rage_quit"]}}`)

	_, err := factory.ParseRules(doc)
	assert.Error(t, err)
}

func TestParseRules_MalformedJSON(t *testing.T) {
	_, err := factory.ParseRules([]byte(`{`))
	assert.Error(t, err)
}

func TestParseRules_MalformedRate(t *testing.T) {
	doc := []byte(`{"social_security": {"employee_rate": "seven percent", "employer_rate": "0.215"}}`)

	_, err := factory.ParseRules(doc)
	assert.Error(t, err)
}
