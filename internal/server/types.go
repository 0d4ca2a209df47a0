// Package server exposes internal/cobraops over HTTP: one synchronous
// request maps to one AssignTargets call, with no session state, per
// SPEC_FULL.md §2.5. Grounded on MeKo-Christian-pogo/internal/server's
// Server/Config/handler split.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cobraops/cobraops/internal/bench"
)

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	MetricsEnabled bool
	MetricsPath    string
}

// Server wires HTTP routes to internal/cobraops.
type Server struct {
	cfg Config
}

// NewServer creates a server instance.
func NewServer(cfg Config) *Server {
	return &Server{cfg: cfg}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.healthHandler)
	mux.HandleFunc("/assign", s.assignHandler)
	if s.cfg.MetricsEnabled {
		path := s.cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle(path, promhttp.Handler())
	}
}

// HealthResponse is the /healthz response body.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// AssignRequest is the /assign request body: a bench geometry and the
// target positions to assign against it.
type AssignRequest struct {
	Bench   BenchPayload   `json:"bench"`
	Targets []PointPayload `json:"targets"`
}

// BenchPayload is the JSON wire form of bench.Bench.
type BenchPayload struct {
	Center  []PointPayload  `json:"center"`
	L1      []float64       `json:"l1"`
	L2      []float64       `json:"l2"`
	RMin    []float64       `json:"r_min"`
	RMax    []float64       `json:"r_max"`
	Home0   []PointPayload  `json:"home0"`
	MinDist []float64       `json:"min_dist"`
	NN      []NNPairPayload `json:"nn"`
}

// NNPairPayload is one unordered neighbor relation.
type NNPairPayload struct {
	A int `json:"a"`
	B int `json:"b"`
}

// PointPayload is the JSON wire form of geom.Point.
type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AssignResponse is the /assign response body.
type AssignResponse struct {
	AssignedTargets    []int          `json:"assignedTargets"`
	FiberPositions     []PointPayload `json:"fiberPositions"`
	ResidualCollisions int            `json:"residualCollisions"`
}

// ErrorResponse is the body returned for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (p BenchPayload) toBench() *bench.Bench {
	b := &bench.Bench{
		Center:  pointsFromPayload(p.Center),
		L1:      append([]float64(nil), p.L1...),
		L2:      append([]float64(nil), p.L2...),
		RMin:    append([]float64(nil), p.RMin...),
		RMax:    append([]float64(nil), p.RMax...),
		Home0:   pointsFromPayload(p.Home0),
		MinDist: append([]float64(nil), p.MinDist...),
	}
	for _, pair := range p.NN {
		b.NN.Row = append(b.NN.Row, pair.A, pair.B)
		b.NN.Col = append(b.NN.Col, pair.B, pair.A)
	}
	return b
}
