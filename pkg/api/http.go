package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/neuroguard/bioapi/pkg/analysis"
	"github.com/neuroguard/bioapi/pkg/biosignal"
	"github.com/neuroguard/bioapi/pkg/common/logger"
	"github.com/neuroguard/bioapi/pkg/common/models"
	"github.com/neuroguard/bioapi/pkg/ledger"
	"github.com/neuroguard/bioapi/pkg/observability/metrics"
)

// AcquisitionSource is the live feed the handler polls before falling back
// to generated data.
type AcquisitionSource interface {
	ReadLine() (string, bool)
	Active() bool
	Device() string
}

type Handler struct {
	source    AcquisitionSource
	generator *biosignal.Generator
	engine    *analysis.Engine
	ledger    *ledger.StatusService
	delay     time.Duration
}

// NewHandler wires the API endpoints. delay is the simulated inference time
// applied to every analysis request.
func NewHandler(source AcquisitionSource, generator *biosignal.Generator, engine *analysis.Engine, ledger *ledger.StatusService, delay time.Duration) *Handler {
	return &Handler{
		source:    source,
		generator: generator,
		engine:    engine,
		ledger:    ledger,
		delay:     delay,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/biosignals/live", h.handleLiveReading).Methods(http.MethodGet)
	r.HandleFunc("/process_data", h.handleProcessData).Methods(http.MethodPost)
	r.HandleFunc("/ledger/status", h.handleLedgerStatus).Methods(http.MethodGet)
}

type statusResponse struct {
	Message      string `json:"message"`
	SerialStatus string `json:"serial_status"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	status := "Operational (Mock Data Mode)"
	if h.source.Active() {
		status = fmt.Sprintf("Operational (Serial Active on %s)", h.source.Device())
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Message:      "NeuroGuard API is running.",
		SerialStatus: status,
	})
}

func (h *Handler) handleLiveReading(w http.ResponseWriter, r *http.Request) {
	reading, source := h.nextReading()
	metrics.RecordReadingServed(source)
	writeJSON(w, http.StatusOK, reading)
}

// nextReading prefers the serial feed. The endpoint never fails: an
// inactive feed, an empty poll, a malformed line, and an unknown signal
// token all fall back to a generated reading.
func (h *Handler) nextReading() (models.Reading, string) {
	line, ok := h.source.ReadLine()
	if !ok {
		return h.generator.Generate(), metrics.SourceMock
	}

	reading, err := biosignal.ParseLine(line)
	if err != nil {
		logger.Log.WithError(err).WithField("line", line).Warn("discarding unparseable serial line")
		return h.generator.Generate(), metrics.SourceMock
	}
	if !reading.SignalType.Valid() {
		logger.Log.WithField("signal_type", string(reading.SignalType)).Warn("discarding reading with unknown signal type")
		return h.generator.Generate(), metrics.SourceMock
	}

	return reading, metrics.SourceSerial
}

func (h *Handler) handleProcessData(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("invalid analysis payload")
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}

	reading, err := req.Reading()
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.Log.WithError(err).Error("failed to build reading")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Simulated model inference time.
	select {
	case <-time.After(h.delay):
	case <-r.Context().Done():
		return
	}

	result := h.engine.Analyze(reading)
	metrics.RecordAnalysis(string(result.RiskLevel))
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleLedgerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Status())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
