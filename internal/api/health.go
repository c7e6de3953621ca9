package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"vattours/server/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		dbStatus := "ok"
		if err := db.Ping(); err != nil {
			dbStatus = "down"
		}

		overallStatus := "ok"
		if dbStatus != "ok" {
			overallStatus = "down"
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := dtos.HealthResponse{
			Status:   overallStatus,
			Database: dbStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
