package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

func (app *App) HealthHandler(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"status": "ok",
	}

	if up, err := host.Uptime(); err == nil {
		payload["host_uptime_seconds"] = up
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		payload["mem_used_percent"] = vm.UsedPercent
	}

	w.Header().Set("Content-Type", "application/json")

	sqlDB, err := app.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		slog.Error("Health check failed", "error", err)
		payload["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(payload)
}
