package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gaschecker/internal/http/handler/middleware"
	"gaschecker/internal/http/payload"
)

var (
	Root       = "GET /{$}"
	Health     = "GET /api/health"
	CheckGas   = "GET /api/gas"
	QuickCheck = "GET /api/quick"
)

type GasHandler struct {
	logs    *zap.SugaredLogger
	checker GasService
}

func NewGasHandler(logger *zap.SugaredLogger, gasService GasService) *GasHandler {
	return &GasHandler{
		logs:    logger,
		checker: gasService,
	}
}

// Register mounts every route of the handler on mux.
func (h *GasHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Root, h.HandleHealth)
	mux.HandleFunc(Health, h.HandleHealth)
	mux.HandleFunc(CheckGas, h.HandleCheckGas)
	mux.HandleFunc(QuickCheck, h.HandleQuickCheck)
}

func (h *GasHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, HealthResponse{
		Status:   "ok",
		ETHPrice: h.checker.ETHPrice(r.Context()),
	}, http.StatusOK, requestId)
}

func (h *GasHandler) HandleCheckGas(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.NewGasRequest(r)
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Gas check failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", CheckGas,
			"request_id", requestId)
		return
	}

	h.logs.Infow("gas check request received",
		"username", req.Username,
		"handler", CheckGas,
		"request_id", requestId)

	result := h.checker.CheckGas(r.Context(), req.Username)

	h.logs.Infow("gas check completed",
		"username", req.Username,
		"success", result.Success,
		"total_transactions", result.TotalTransactions,
		"handler", CheckGas,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *GasHandler) HandleQuickCheck(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req := payload.NewGasRequest(r)
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Quick check failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", QuickCheck,
			"request_id", requestId)
		return
	}

	result := h.checker.QuickCheck(r.Context(), req.Username)

	h.logs.Infow("quick check completed",
		"username", req.Username,
		"success", result.Success,
		"handler", QuickCheck,
		"request_id", requestId)

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *GasHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if reqId, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return reqId
	}
	return ""
}
