/*
Package factory builds the statutory rule set the calculators run under.

PURPOSE:
  Converts a JSON rules document into the withholding and settlement
  configurations. Statutory numbers change by decree, not by deploy: keeping
  them in configuration means a rate correction (the employee INSS rate is
  disputed between 7% and 6.25% in the source material) is an ops change.

JSON SCHEMA:
  {
    "social_security": {"employee_rate": "0.07", "employer_rate": "0.215"},
    "income_tax_brackets": [
      {"floor": "0", "ceiling": "100000", "rate": "0"},
      {"floor": "100000", "ceiling": "200000", "rate": "0.15"},
      ...
      {"floor": "500000", "rate": "0.30"}          // open-ended top band
    ],
    "severance": {
      "eligible_reasons": ["termination_without_cause", "resignation",
                           "mutual_agreement"],
      "tier_threshold_years": "3",
      "tier_rate": "0.6667",
      "cap_months": "5"
    }
  }

  Rates and amounts are JSON strings parsed as decimals; floats would lose
  precision exactly where it matters.

DEFAULTS:
  DefaultRules() carries the full statutory defaults, so a deployment with no
  rules document behaves like the system this replaces. ParseRules overlays a
  document on top of the defaults; omitted sections keep their default.

SEE ALSO:
  - withholding/withholding.go: Config consumer
  - settlement/settlement.go: Config consumer
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alltechcamoapa/Softsupport-sub000/labor"
	"github.com/alltechcamoapa/Softsupport-sub000/settlement"
	"github.com/alltechcamoapa/Softsupport-sub000/withholding"
)

// =============================================================================
// RULE SET
// =============================================================================

// Rules is the effective statutory configuration.
type Rules struct {
	Withholding withholding.Config
	Settlement  settlement.Config
}

// DefaultRules returns the statutory defaults.
func DefaultRules() Rules {
	return Rules{
		Withholding: withholding.Config{
			// 7% is what the withholding math in the source uses; the 6.25%
			// UI caption is an open question for the business owner.
			EmployeeRate: labor.MustDecimal("0.07"),
			EmployerRate: labor.MustDecimal("0.215"),
			Brackets: []withholding.Bracket{
				{Floor: labor.MustDecimal("0"), Ceiling: labor.MustDecimal("100000"), Rate: labor.MustDecimal("0")},
				{Floor: labor.MustDecimal("100000"), Ceiling: labor.MustDecimal("200000"), Rate: labor.MustDecimal("0.15")},
				{Floor: labor.MustDecimal("200000"), Ceiling: labor.MustDecimal("350000"), Rate: labor.MustDecimal("0.20")},
				{Floor: labor.MustDecimal("350000"), Ceiling: labor.MustDecimal("500000"), Rate: labor.MustDecimal("0.25")},
				{Floor: labor.MustDecimal("500000"), Rate: labor.MustDecimal("0.30"), Open: true},
			},
		},
		Settlement: settlement.Config{
			// Resignation is eligible here because the replaced system paid
			// it; legally dubious, so it is config, not code.
			EligibleReasons: map[settlement.Reason]bool{
				settlement.ReasonWithoutCause:    true,
				settlement.ReasonResignation:     true,
				settlement.ReasonMutualAgreement: true,
			},
			TierThresholdYears: decimal.NewFromInt(3),
			TierRate:           decimal.NewFromInt(20).Div(decimal.NewFromInt(30)),
			CapMonths:          decimal.NewFromInt(5),
		},
	}
}

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

type RulesJSON struct {
	SocialSecurity *SocialSecurityJSON `json:"social_security,omitempty"`
	Brackets       []BracketJSON       `json:"income_tax_brackets,omitempty"`
	Severance      *SeveranceJSON      `json:"severance,omitempty"`
}

type SocialSecurityJSON struct {
	EmployeeRate string `json:"employee_rate"`
	EmployerRate string `json:"employer_rate"`
}

type BracketJSON struct {
	Floor   string `json:"floor"`
	Ceiling string `json:"ceiling,omitempty"` // absent on the top band
	Rate    string `json:"rate"`
}

type SeveranceJSON struct {
	EligibleReasons    []string `json:"eligible_reasons"`
	TierThresholdYears string   `json:"tier_threshold_years,omitempty"`
	TierRate           string   `json:"tier_rate,omitempty"`
	CapMonths          string   `json:"cap_months,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseRules overlays a JSON rules document on the defaults.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if len(data) == 0 {
		return rules, nil
	}

	var doc RulesJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}

	if doc.SocialSecurity != nil {
		employee, err := decimal.NewFromString(doc.SocialSecurity.EmployeeRate)
		if err != nil {
			return Rules{}, fmt.Errorf("parse rules: employee_rate: %w", err)
		}
		employer, err := decimal.NewFromString(doc.SocialSecurity.EmployerRate)
		if err != nil {
			return Rules{}, fmt.Errorf("parse rules: employer_rate: %w", err)
		}
		rules.Withholding.EmployeeRate = employee
		rules.Withholding.EmployerRate = employer
	}

	if len(doc.Brackets) > 0 {
		brackets, err := parseBrackets(doc.Brackets)
		if err != nil {
			return Rules{}, err
		}
		rules.Withholding.Brackets = brackets
	}

	if doc.Severance != nil {
		if err := applySeverance(&rules.Settlement, doc.Severance); err != nil {
			return Rules{}, err
		}
	}

	return rules, nil
}

func parseBrackets(docs []BracketJSON) ([]withholding.Bracket, error) {
	brackets := make([]withholding.Bracket, 0, len(docs))
	for i, b := range docs {
		floor, err := decimal.NewFromString(b.Floor)
		if err != nil {
			return nil, fmt.Errorf("parse rules: bracket %d floor: %w", i, err)
		}
		rate, err := decimal.NewFromString(b.Rate)
		if err != nil {
			return nil, fmt.Errorf("parse rules: bracket %d rate: %w", i, err)
		}
		bracket := withholding.Bracket{Floor: floor, Rate: rate, Open: b.Ceiling == ""}
		if !bracket.Open {
			ceiling, err := decimal.NewFromString(b.Ceiling)
			if err != nil {
				return nil, fmt.Errorf("parse rules: bracket %d ceiling: %w", i, err)
			}
			if ceiling.LessThanOrEqual(floor) {
				return nil, fmt.Errorf("parse rules: bracket %d ceiling %s not above floor %s", i, b.Ceiling, b.Floor)
			}
			bracket.Ceiling = ceiling
		}
		brackets = append(brackets, bracket)
	}
	if len(brackets) == 0 || !brackets[len(brackets)-1].Open {
		return nil, fmt.Errorf("parse rules: last bracket must be open-ended")
	}
	return brackets, nil
}

func applySeverance(cfg *settlement.Config, doc *SeveranceJSON) error {
	if len(doc.EligibleReasons) > 0 {
		eligible := make(map[settlement.Reason]bool, len(doc.EligibleReasons))
		for _, raw := range doc.EligibleReasons {
			reason := settlement.Reason(raw)
			if !reason.Valid() {
				return fmt.Errorf("parse rules: unknown termination reason %q", raw)
			}
			eligible[reason] = true
		}
		cfg.EligibleReasons = eligible
	}
	for _, field := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{doc.TierThresholdYears, &cfg.TierThresholdYears},
		{doc.TierRate, &cfg.TierRate},
		{doc.CapMonths, &cfg.CapMonths},
	} {
		if field.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(field.raw)
		if err != nil {
			return fmt.Errorf("parse rules: severance tier: %w", err)
		}
		*field.dst = d
	}
	return nil
}
