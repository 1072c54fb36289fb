package analysis

import (
	"fmt"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

// defaultAction is suggested when a reading trips no rule.
const defaultAction = "Continue passive monitoring."

type Engine struct {
	rules []Rule
}

func NewEngine(cfg RulesConfig) (*Engine, error) {
	var active []Rule
	for _, rule := range cfg.Rules {
		if !rule.Enabled {
			continue
		}
		if !rule.Signal.Valid() {
			return nil, fmt.Errorf("rule %q: unknown signal type %q", rule.Name, rule.Signal)
		}
		if !rule.Risk.Valid() {
			return nil, fmt.Errorf("rule %q: unknown risk level %q", rule.Name, rule.Risk)
		}
		if rule.Above == nil && rule.Below == nil {
			return nil, fmt.Errorf("rule %q: no threshold configured", rule.Name)
		}
		active = append(active, rule)
	}
	return &Engine{rules: active}, nil
}

// Analyze scores one reading. Rules are evaluated in configured order and
// the first match wins.
func (e *Engine) Analyze(reading models.Reading) models.AnalysisResult {
	risk := models.RiskLow
	action := defaultAction

	for _, rule := range e.rules {
		if rule.matches(reading) {
			risk = rule.Risk
			action = rule.Action
			break
		}
	}

	return models.AnalysisResult{
		ActionSuggestion:    action,
		RiskLevel:           risk,
		ConsentLedgerUpdate: fmt.Sprintf("Consent ledger update mocked: New reading for %s logged with Risk: %s.", reading.UserID, risk),
	}
}
