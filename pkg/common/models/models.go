package models

import "time"

// Signal kinds. Values match the tokens the capture firmware emits on the
// serial line, so they double as wire constants.
type SignalType string

const (
	SignalEEG SignalType = "EEG"
	SignalECG SignalType = "ECG"
	SignalGSR SignalType = "GSR"
)

// SignalTypes lists every supported signal kind in a stable order.
var SignalTypes = []SignalType{SignalEEG, SignalECG, SignalGSR}

func (s SignalType) Valid() bool {
	switch s {
	case SignalEEG, SignalECG, SignalGSR:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

type ContractStatus string

const (
	ContractOperational ContractStatus = "Operational"
	ContractOffline     ContractStatus = "Offline"
)

// DefaultUserID is assumed when a caller submits a reading without one.
const DefaultUserID = "NG-User-1234"

// Reading is one biosignal sample. Readings are built per request and never
// persisted; reading_value carries no enforced range (the mock generator
// constrains its own output, parsed live values pass through unchecked).
type Reading struct {
	SignalType   SignalType `json:"signal_type"`
	ReadingValue float64    `json:"reading_value"`
	Timestamp    time.Time  `json:"timestamp"`
	UserID       string     `json:"user_id"`
}

// AnalysisResult is the canned AI verdict for one Reading.
type AnalysisResult struct {
	ActionSuggestion    string    `json:"action_suggestion"`
	RiskLevel           RiskLevel `json:"risk_level"`
	ConsentLedgerUpdate string    `json:"consent_ledger_update"`
}

// LedgerStatus is the fabricated consent-contract status record.
type LedgerStatus struct {
	ContractName          string         `json:"contract_name"`
	Status                ContractStatus `json:"status"`
	LastBlockNumber       int64          `json:"last_block_number"`
	TotalConsentsRecorded int64          `json:"total_consents_recorded"`
}
