package health

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chitieu-app/chitieu/pkg/api"
	"github.com/chitieu-app/chitieu/pkg/health"
	"github.com/chitieu-app/chitieu/pkg/mapping"
	"github.com/chitieu-app/chitieu/pkg/storage"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// HealthHandler holds the dependencies for financial-health handlers.
type HealthHandler struct {
	Loader *health.Loader
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store storage.SnapshotReader) *HealthHandler {
	return &HealthHandler{Loader: health.NewLoader(store)}
}

// GetFinancialHealth computes the caller's financial health report. Any
// failure in the calculation degrades to a neutral zero-score response
// instead of an error, so a data problem never breaks the dashboard.
func (h *HealthHandler) GetFinancialHealth(w http.ResponseWriter, r *http.Request, userId uuid.UUID) {
	response := h.calculate(r, userId)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func (h *HealthHandler) calculate(r *http.Request, userId uuid.UUID) *api.FinancialHealthResponse {
	snapshot, err := h.Loader.Load(r.Context(), userId)
	if err != nil {
		slog.Error("failed to load financial snapshot", "user_id", userId, "error", err)
		return degradedResponse(userId)
	}

	response := mapping.ToApiHealthResponse(health.Calculate(snapshot))
	response.Recommendations = []string{health.SpendingSuggestion(snapshot)}
	return response
}

// degradedResponse is the safe default returned when the score cannot be
// calculated.
func degradedResponse(userId uuid.UUID) *api.FinancialHealthResponse {
	return &api.FinancialHealthResponse{
		UserId:          userId.String(),
		CalculatedAt:    openapi_types.Date{Time: time.Now()},
		OverallScore:    0,
		Status:          string(health.StatusUnknown),
		Recommendations: []string{"Unable to calculate your score. Please check your transactions and try again."},
	}
}

// GetSpendingByCategory reports the caller's expense totals per category.
func (h *HealthHandler) GetSpendingByCategory(w http.ResponseWriter, r *http.Request, userId uuid.UUID) {
	snapshot, err := h.Loader.Load(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load spending data: %v", err), http.StatusInternalServerError)
		return
	}

	summary := api.SpendingSummary{
		ByCategory: health.SpendingByCategory(snapshot),
		Suggestion: health.SpendingSuggestion(snapshot),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
