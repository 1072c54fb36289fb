package ledger

import (
	"math/rand"
	"sync"

	"github.com/neuroguard/bioapi/pkg/common/models"
)

// ContractName identifies the mocked consent contract.
const ContractName = "NeuroGuardConsentLedger"

// StatusService fabricates chain state for the consent contract. Block and
// consent counts are drawn fresh on every call, so consecutive responses
// carry no continuity.
type StatusService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewStatusService(rng *rand.Rand) *StatusService {
	return &StatusService{rng: rng}
}

func (s *StatusService) Status() models.LedgerStatus {
	s.mu.Lock()
	block := 1000000 + s.rng.Int63n(500001)
	consents := 5000 + s.rng.Int63n(5001)
	s.mu.Unlock()

	return models.LedgerStatus{
		ContractName:          ContractName,
		Status:                models.ContractOperational,
		LastBlockNumber:       block,
		TotalConsentsRecorded: consents,
	}
}
