package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimakw/btc-balance/internal/application/services"
	"github.com/bimakw/btc-balance/internal/domain/entities"
)

// BalanceHandler handles HTTP requests for address balance endpoints
type BalanceHandler struct {
	service *services.BalanceService
	logger  *zap.Logger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(service *services.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		service: service,
		logger:  logger,
	}
}

// BalanceResponse wraps a balance record for API response
type BalanceResponse struct {
	Data *entities.BalanceRecord `json:"data"`
}

// RegisterRoutes registers the balance routes on a chi router
func (h *BalanceHandler) RegisterRoutes(r chi.Router) {
	r.Get("/addresses/{address}/balance", h.GetBalance)
}

// GetBalance handles GET /api/v1/addresses/{address}/balance
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := chi.URLParam(r, "address")

	record, err := h.service.GetBalance(ctx, address)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyAddress) {
			h.respondError(w, http.StatusBadRequest, "Address is required")
			return
		}

		h.logger.Error("Failed to get balance",
			zap.Error(err),
			zap.String("address", address),
			zap.String("kind", entities.KindOf(err).String()),
		)

		switch entities.KindOf(err) {
		case entities.KindNetwork:
			h.respondError(w, http.StatusBadGateway, "Failed to fetch data from explorer")
		case entities.KindResponseFormat:
			h.respondError(w, http.StatusBadGateway, "Unexpected explorer response format")
		default:
			h.respondError(w, http.StatusInternalServerError, "Failed to get balance")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, BalanceResponse{Data: record})
}

func (h *BalanceHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *BalanceHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
