package handlers

import (
	"net/http"
	"time"
)

// InitSampleDataHandler godoc
// @Summary Seed demonstration data for a new account
// @Description No-op when the caller already has products.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResult
// @Failure 401 {object} map[string]string
// @Router /init-sample-data [post]
func InitSampleDataHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)

	seeded, err := inventoryRepo.EnsureSampleData(r.Context(), tenantID)
	if err != nil {
		writeRepoError(w, err, "product not found")
		return
	}

	message := "Sample data already exists for this user"
	if seeded {
		message = "Sample data and notifications initialized for user"
	}
	writeJSON(w, http.StatusOK, SeedResult{Success: true, Message: message})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
