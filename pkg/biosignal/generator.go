package biosignal

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

// SimulatedUserID tags synthetic readings.
const SimulatedUserID = "NG-Simulated-User-789"

type valueRange struct {
	min, max float64
}

var mockRanges = map[models.SignalType]valueRange{
	models.SignalEEG: {min: 50, max: 150},
	models.SignalECG: {min: 60, max: 100},
	models.SignalGSR: {min: 0.1, max: 5.0},
}

// ValueRange reports the synthetic value bounds for a signal kind.
func ValueRange(signal models.SignalType) (min, max float64, ok bool) {
	r, found := mockRanges[signal]
	return r.min, r.max, found
}

// Generator fabricates plausible readings from an injected random source.
// Seed the source in tests for reproducible output; the mutex makes it safe
// to share across request handlers.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate draws one synthetic Reading: a uniform signal kind, a value
// uniform within that kind's range rounded to two decimals, the current
// instant and the simulated user id.
func (g *Generator) Generate() models.Reading {
	g.mu.Lock()
	signal := models.SignalTypes[g.rng.Intn(len(models.SignalTypes))]
	bounds := mockRanges[signal]
	value := bounds.min + g.rng.Float64()*(bounds.max-bounds.min)
	g.mu.Unlock()

	return models.Reading{
		SignalType:   signal,
		ReadingValue: math.Round(value*100) / 100,
		Timestamp:    time.Now().UTC(),
		UserID:       SimulatedUserID,
	}
}
