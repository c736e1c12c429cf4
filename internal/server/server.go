// Package server exposes the calculation engine over HTTP. Every request
// reads the configuration snapshot current at that moment, so table reloads
// take effect between requests without a restart.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/homelend/mortgage-engine/internal/config"
	"github.com/homelend/mortgage-engine/internal/engine"
	engineerrors "github.com/homelend/mortgage-engine/internal/errors"
	"github.com/homelend/mortgage-engine/pkg/constants"
	"github.com/homelend/mortgage-engine/pkg/scenario"
)

type handler struct {
	logger      *zap.Logger
	store       *config.Store
	calc        *engine.Calculator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, store *config.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		store:       store,
		calc:        engine.NewCalculator(logger),
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/purchase", h.handlePurchase)
	mux.HandleFunc("/api/refinance", h.handleRefinance)
	mux.HandleFunc("/api/config", h.handleConfig)
	mux.HandleFunc("/api/version", h.handleVersion)
	return mux
}

func (h *handler) handlePurchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var sc scenario.LoanScenario
	if !h.decodeScenario(w, r, &sc, "server.handlePurchase") {
		return
	}

	result, err := h.calc.Purchase(h.store.Current(), &sc)
	if err != nil {
		h.respondEngineError(w, err, "server.handlePurchase")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleRefinance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var sc scenario.RefinanceScenario
	if !h.decodeScenario(w, r, &sc, "server.handleRefinance") {
		return
	}

	result, err := h.calc.Refinance(h.store.Current(), &sc)
	if err != nil {
		h.respondEngineError(w, err, "server.handleRefinance")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	snap := h.store.Current()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":     snap.Version,
		"loadedAt":    snap.LoadedAt,
		"closingFees": len(snap.ClosingFees),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeScenario reads a JSON request body into the scenario struct. Field
// names match the YAML scenario files (case-insensitive).
func (h *handler) decodeScenario(w http.ResponseWriter, r *http.Request, out interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "request body exceeds the size limit", op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, "failed to decode scenario: "+err.Error(), op)
		return false
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out, Squash: true})
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to build scenario decoder", op)
		return false
	}
	if err := decoder.Decode(payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid scenario payload: "+err.Error(), op)
		return false
	}
	return true
}

// respondEngineError maps the error taxonomy onto HTTP statuses: bad input is
// the client's fault, a lookup miss means the scenario cannot be priced, and
// a configuration problem is the server's.
func (h *handler) respondEngineError(w http.ResponseWriter, err error, op string) {
	var engErr *engineerrors.Error
	if !errors.As(err, &engErr) {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	status := http.StatusInternalServerError
	switch engErr.Kind {
	case engineerrors.KindValidation:
		status = http.StatusBadRequest
	case engineerrors.KindCalculation:
		status = http.StatusUnprocessableEntity
	case engineerrors.KindConfiguration:
		status = http.StatusInternalServerError
	}

	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, engErr)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
