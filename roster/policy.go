/*
policy.go - Tunable rule limits

PURPOSE:
  The two numeric knobs of the engine live here: the minimum rest between
  shifts on consecutive days and the weekly hour ceiling per employment
  fraction. Deployments load overrides from configuration or the store;
  DefaultRulePolicy matches Polish labor-code defaults.

SEE ALSO:
  - rest.go: consumes MinRestHours
  - week.go: consumes WeeklyLimits
*/
package roster

import (
	"github.com/shopspring/decimal"
)

// RulePolicy carries the policy limits the validators enforce.
type RulePolicy struct {
	// MinRestHours is the floor on rest between shifts worked on
	// consecutive calendar days. Falling below it is critical.
	MinRestHours decimal.Decimal

	// WeeklyLimits maps an employment type to its weekly hour ceiling.
	// Exceeding the ceiling is a warning, never a block.
	WeeklyLimits map[string]decimal.Decimal

	// DefaultWeeklyLimit applies to employment types absent from
	// WeeklyLimits.
	DefaultWeeklyLimit decimal.Decimal
}

// DefaultRulePolicy returns the stock limits: 11h rest, 40/30/20/10 hour
// ceilings for full, three-quarter, half and quarter time.
func DefaultRulePolicy() RulePolicy {
	return RulePolicy{
		MinRestHours: decimal.NewFromInt(11),
		WeeklyLimits: map[string]decimal.Decimal{
			FullTime:         decimal.NewFromInt(40),
			ThreeQuarterTime: decimal.NewFromInt(30),
			HalfTime:         decimal.NewFromInt(20),
			QuarterTime:      decimal.NewFromInt(10),
		},
		DefaultWeeklyLimit: decimal.NewFromInt(40),
	}
}

// WeeklyLimitFor resolves the ceiling for an employment type, falling back
// to DefaultWeeklyLimit for unknown types.
func (p RulePolicy) WeeklyLimitFor(employmentType string) decimal.Decimal {
	if limit, ok := p.WeeklyLimits[employmentType]; ok {
		return limit
	}
	return p.DefaultWeeklyLimit
}

// =============================================================================
// VALIDATOR - Rule policy bound to the evaluation functions
// =============================================================================

// Validator evaluates candidates against a RulePolicy. It holds no other
// state; a single Validator is safe for concurrent use.
type Validator struct {
	Policy RulePolicy
}

// NewValidator binds a policy. Zero-value limits are replaced with the
// defaults so a partially populated policy cannot disable a rule silently.
func NewValidator(policy RulePolicy) *Validator {
	def := DefaultRulePolicy()
	if policy.MinRestHours.IsZero() {
		policy.MinRestHours = def.MinRestHours
	}
	if policy.WeeklyLimits == nil {
		policy.WeeklyLimits = def.WeeklyLimits
	}
	if policy.DefaultWeeklyLimit.IsZero() {
		policy.DefaultWeeklyLimit = def.DefaultWeeklyLimit
	}
	return &Validator{Policy: policy}
}
