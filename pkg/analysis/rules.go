package analysis

import (
	"errors"
	"io/ioutil"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

// Rule flags a reading whose value falls outside the band formed by Below
// and Above. Either bound may be omitted; a reading matches when it is
// strictly above Above or strictly below Below.
type Rule struct {
	Name    string            `yaml:"name" json:"name"`
	Signal  models.SignalType `yaml:"signal" json:"signal"`
	Above   *float64          `yaml:"above,omitempty" json:"above,omitempty"`
	Below   *float64          `yaml:"below,omitempty" json:"below,omitempty"`
	Risk    models.RiskLevel  `yaml:"risk" json:"risk"`
	Action  string            `yaml:"action" json:"action"`
	Enabled bool              `yaml:"enabled" json:"enabled"`
}

type RulesConfig struct {
	Rules []Rule `yaml:"rules" json:"rules"`
}

func (r Rule) matches(reading models.Reading) bool {
	if r.Signal != reading.SignalType {
		return false
	}
	if r.Above != nil && reading.ReadingValue > *r.Above {
		return true
	}
	if r.Below != nil && reading.ReadingValue < *r.Below {
		return true
	}
	return false
}

func LoadRules(path string) (RulesConfig, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	content, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultRules(), err
	}

	var cfg RulesConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return RulesConfig{}, err
	}

	if len(cfg.Rules) == 0 {
		return RulesConfig{}, errors.New("no analysis rules configured")
	}

	return cfg, nil
}

func DefaultRules() RulesConfig {
	return RulesConfig{Rules: []Rule{
		{Name: "EEG spike", Signal: models.SignalEEG, Above: threshold(120), Risk: models.RiskHigh, Action: "Emergency Alert & System Shutdown", Enabled: true},
		{Name: "ECG out of band", Signal: models.SignalECG, Below: threshold(65), Above: threshold(95), Risk: models.RiskModerate, Action: "Increase monitoring frequency and log event.", Enabled: true},
	}}
}

func threshold(v float64) *float64 {
	return &v
}
