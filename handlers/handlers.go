package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"menuwatch/history"
	"menuwatch/monitor"

	"github.com/gorilla/mux"
)

// startGrace is how long a manual trigger waits before concluding the
// cycle actually started rather than being rejected as busy.
const startGrace = 200 * time.Millisecond

type Handlers struct {
	store      *history.Store
	monitor    *monitor.Monitor
	reportPath string
}

func NewHandlers(store *history.Store, m *monitor.Monitor, reportPath string) *Handlers {
	return &Handlers{store: store, monitor: m, reportPath: reportPath}
}

// HealthCheck reports service liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":   "menuwatch",
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

// Dashboard serves the generated HTML report.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.reportPath)
}

// GetHistory returns the full persisted history.
func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Load())
}

// GetCompetitorHistory returns one competitor's record.
func (h *Handlers) GetCompetitorHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	hist := h.store.Load()
	rec, ok := hist.Competitors[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown competitor")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// TriggerRun starts a check cycle. A cycle already in flight rejects
// the trigger instead of queuing a second one.
func (h *Handlers) TriggerRun(w http.ResponseWriter, r *http.Request) {
	done := make(chan bool, 1)
	go func() { done <- h.monitor.Run() }()

	select {
	case started := <-done:
		if !started {
			writeError(w, http.StatusConflict, "a check cycle is already running")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
	case <-time.After(startGrace):
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
