package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

var (
	errUnknownSignal = errors.New("unknown signal type")
	errMissingValue  = errors.New("reading_value is required")
)

type ValidationError struct {
	reason error
}

func (e ValidationError) Error() string {
	return e.reason.Error()
}

func (e ValidationError) Unwrap() error {
	return e.reason
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ProcessRequest is the payload accepted by the analysis endpoint. Only
// reading_value is required; the other fields fall back to demo defaults
// when omitted.
type ProcessRequest struct {
	SignalType   *string    `json:"signal_type"`
	ReadingValue *float64   `json:"reading_value"`
	Timestamp    *time.Time `json:"timestamp"`
	UserID       string     `json:"user_id"`
}

// Reading validates the request and converts it into a Reading. A present
// signal_type must match the enum exactly; an absent one means EEG.
func (req ProcessRequest) Reading() (models.Reading, error) {
	if req.ReadingValue == nil {
		return models.Reading{}, ValidationError{reason: errMissingValue}
	}

	signal := models.SignalEEG
	if req.SignalType != nil {
		signal = models.SignalType(*req.SignalType)
		if !signal.Valid() {
			return models.Reading{}, ValidationError{reason: fmt.Errorf("signal type %q: %w", *req.SignalType, errUnknownSignal)}
		}
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil {
		timestamp = req.Timestamp.UTC()
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = models.DefaultUserID
	}

	return models.Reading{
		SignalType:   signal,
		ReadingValue: *req.ReadingValue,
		Timestamp:    timestamp,
		UserID:       userID,
	}, nil
}
