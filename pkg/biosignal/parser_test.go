package biosignal

import (
	"testing"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

func TestParseLineFullLine(t *testing.T) {
	reading, err := ParseLine("EEG,75.5,user42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.SignalType != models.SignalEEG {
		t.Fatalf("unexpected signal type %q", reading.SignalType)
	}
	if reading.ReadingValue != 75.5 {
		t.Fatalf("unexpected value %v", reading.ReadingValue)
	}
	if reading.UserID != "user42" {
		t.Fatalf("unexpected user id %q", reading.UserID)
	}
	if reading.Timestamp.IsZero() {
		t.Fatal("expected timestamp set")
	}
}

func TestParseLineTrimsFields(t *testing.T) {
	reading, err := ParseLine(" ECG , 82.1 , ward7 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.SignalType != models.SignalECG || reading.ReadingValue != 82.1 || reading.UserID != "ward7" {
		t.Fatalf("fields not trimmed: %+v", reading)
	}
}

func TestParseLineDefaultsUserID(t *testing.T) {
	reading, err := ParseLine("GSR,2.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.UserID != SerialUserID {
		t.Fatalf("expected placeholder user id, got %q", reading.UserID)
	}
}

func TestParseLineTooFewFields(t *testing.T) {
	if _, err := ParseLine("EEG"); err == nil {
		t.Fatal("expected error for single field")
	}
}

func TestParseLineNonNumericValue(t *testing.T) {
	if _, err := ParseLine("EEG,abc"); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}

func TestParseLinePassesUnknownSignalThrough(t *testing.T) {
	reading, err := ParseLine("EMG,12.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.SignalType != "EMG" {
		t.Fatalf("expected verbatim signal token, got %q", reading.SignalType)
	}
	if reading.SignalType.Valid() {
		t.Fatal("EMG must not validate against the supported set")
	}
}

func TestFormatLineRoundTrips(t *testing.T) {
	line := FormatLine(models.Reading{SignalType: models.SignalECG, ReadingValue: 88.25, UserID: "user42"})
	if line != "ECG,88.25,user42" {
		t.Fatalf("unexpected line %q", line)
	}

	reading, err := ParseLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.SignalType != models.SignalECG || reading.ReadingValue != 88.25 || reading.UserID != "user42" {
		t.Fatalf("round trip mismatch: %+v", reading)
	}
}
