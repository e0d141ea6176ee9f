package handler

import (
	"net/http"
	"time"
)

// HealthStatus é a resposta do healthcheck
type HealthStatus struct {
	Status            string    `json:"status"`
	Time              time.Time `json:"time"`
	DatasetConfigured bool      `json:"dataset_configured"`
}

// HealthcheckHandler responde se a API está no ar e se há uma fonte de dados configurada
func HealthcheckHandler(datasetConfigured bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, HealthStatus{
			Status:            "ok",
			Time:              time.Now().UTC(),
			DatasetConfigured: datasetConfigured,
		})
	})
}
