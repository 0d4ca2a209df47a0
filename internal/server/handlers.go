package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cobraops/cobraops/internal/cobraops"
	"github.com/cobraops/cobraops/internal/geom"
)

func pointsFromPayload(pts []PointPayload) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return out
}

func pointsToPayload(pts []geom.Point) []PointPayload {
	out := make([]PointPayload, len(pts))
	for i, p := range pts {
		out[i] = PointPayload{X: p.X, Y: p.Y}
	}
	return out
}

// healthHandler returns server liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, resp)
}

// assignHandler runs one synchronous AssignTargets call over the
// request body's bench and targets. No session state is kept between
// requests, per spec.md §5.
func (s *Server) assignHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "200"
	defer func() {
		httpRequestsTotal.WithLabelValues(r.Method, "/assign", status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, "/assign").Observe(time.Since(start).Seconds())
	}()

	if r.Method != http.MethodPost {
		status = "405"
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = "400"
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b := req.Bench.toBench()
	targets := pointsFromPayload(req.Targets)

	assignedTargets, fiberPositions, err := cobraops.AssignTargets(targets, b)
	if err != nil {
		status = "400"
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	residual := cobraops.GetProblematicCobras(fiberPositions, b)
	assignDurationSeconds.Observe(time.Since(start).Seconds())
	assignCobraCount.Observe(float64(b.N()))
	assignResidualCollisions.Add(float64(len(residual) / 2))

	resp := AssignResponse{
		AssignedTargets:    assignedTargets,
		FiberPositions:     pointsToPayload(fiberPositions),
		ResidualCollisions: len(residual) / 2,
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
