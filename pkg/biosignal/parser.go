package biosignal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

// SerialUserID is assumed for device lines that omit the user field.
const SerialUserID = "NG-Serial-Device"

var (
	errTooFewFields    = errors.New("expected at least signal type and value fields")
	errValueNotNumeric = errors.New("reading value is not numeric")
)

// ParseLine converts one raw device line into a Reading. Lines are
// comma-separated: signal type, numeric value, optional user id. The signal
// token passes through verbatim here; strict enum validation happens at the
// API boundary. On any failure no partial Reading is returned and the caller
// falls back to synthetic data.
func ParseLine(line string) (models.Reading, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return models.Reading{}, fmt.Errorf("parsing %q: %w", line, errTooFewFields)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("parsing %q: %w", line, errValueNotNumeric)
	}

	userID := SerialUserID
	if len(parts) > 2 {
		if id := strings.TrimSpace(parts[2]); id != "" {
			userID = id
		}
	}

	return models.Reading{
		SignalType:   models.SignalType(strings.TrimSpace(parts[0])),
		ReadingValue: value,
		Timestamp:    time.Now().UTC(),
		UserID:       userID,
	}, nil
}

// FormatLine renders a Reading in the device line protocol, the inverse of
// ParseLine.
func FormatLine(r models.Reading) string {
	return fmt.Sprintf("%s,%.2f,%s", r.SignalType, r.ReadingValue, r.UserID)
}
