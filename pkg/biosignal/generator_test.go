package biosignal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

func TestGenerateStaysWithinRanges(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		reading := g.Generate()
		if !reading.SignalType.Valid() {
			t.Fatalf("unexpected signal type %q", reading.SignalType)
		}
		min, max, ok := ValueRange(reading.SignalType)
		if !ok {
			t.Fatalf("no range for %q", reading.SignalType)
		}
		if reading.ReadingValue < min || reading.ReadingValue > max {
			t.Fatalf("%s value %v outside [%v, %v]", reading.SignalType, reading.ReadingValue, min, max)
		}
		if reading.UserID != SimulatedUserID {
			t.Fatalf("unexpected user id %q", reading.UserID)
		}
		if reading.Timestamp.IsZero() {
			t.Fatal("expected timestamp set")
		}
	}
}

func TestGenerateRoundsToTwoDecimals(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		reading := g.Generate()
		scaled := reading.ReadingValue * 100
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Fatalf("value %v not rounded to two decimals", reading.ReadingValue)
		}
	}
}

func TestGenerateIsReproducibleForSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42)))
	b := NewGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		ra, rb := a.Generate(), b.Generate()
		if ra.SignalType != rb.SignalType || ra.ReadingValue != rb.ReadingValue {
			t.Fatalf("seeded generators diverged at draw %d: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestValueRangeUnknownSignal(t *testing.T) {
	if _, _, ok := ValueRange(models.SignalType("EMG")); ok {
		t.Fatal("expected no range for unsupported signal")
	}
}
