// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	statusOK           = "ok"
	statusDegraded     = "degraded"
	statusShuttingDown = "shutting_down"

	probeTimeout = 5 * time.Second
)

type Checker interface {
	Ping(ctx context.Context) error
}

type dependency struct {
	name    string
	checker Checker
}

// Handler serves the liveness and readiness probes. Readiness pings every
// dependency in parallel and reports each one.
type Handler struct {
	deps     []dependency
	draining atomic.Bool
}

func NewHandler(db Checker) *Handler {
	h := &Handler{}
	h.AddCheck("database", db)
	return h
}

// AddCheck must be called before the handler serves traffic.
func (h *Handler) AddCheck(name string, c Checker) {
	h.deps = append(h.deps, dependency{name: name, checker: c})
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

// SetShutdown fails both probes so the load balancer stops routing here
// while in-flight requests drain.
func (h *Handler) SetShutdown(shutdown bool) {
	h.draining.Store(shutdown)
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	if h.draining.Load() {
		writeProbe(w, http.StatusServiceUnavailable, StatusResponse{Status: statusShuttingDown})
		return
	}
	writeProbe(w, http.StatusOK, StatusResponse{Status: statusOK})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		writeProbe(w, http.StatusServiceUnavailable, StatusResponse{Status: statusShuttingDown})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := ReadinessResponse{Status: statusOK, Checks: h.probeAll(ctx)}
	code := http.StatusOK
	for _, c := range resp.Checks {
		if !c.Healthy {
			resp.Status = statusDegraded
			code = http.StatusServiceUnavailable
		}
	}

	writeProbe(w, code, resp)
}

// probeAll keeps results in registration order.
func (h *Handler) probeAll(ctx context.Context) []HealthCheck {
	results := make([]HealthCheck, len(h.deps))

	var wg sync.WaitGroup
	for i, d := range h.deps {
		wg.Go(func() {
			results[i] = d.probe(ctx)
		})
	}
	wg.Wait()

	return results
}

func (d dependency) probe(ctx context.Context) HealthCheck {
	if d.checker == nil {
		return HealthCheck{Name: d.name, Message: d.name + " checker not configured"}
	}

	start := time.Now()
	err := d.checker.Ping(ctx)
	check := HealthCheck{
		Name:    d.name,
		Healthy: err == nil,
		Latency: time.Since(start).String(),
	}
	if err != nil {
		// driver errors can carry hostnames; keep them out of a public probe
		check.Message = "ping failed"
	}
	return check
}

func writeProbe(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(body)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
