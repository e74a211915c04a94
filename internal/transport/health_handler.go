// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service.
const ServiceName = "hodlscope.v1.LookupService"

// HealthHandler reports serving status over gRPC and REST.
type HealthHandler struct {
	server *health.Server
}

// NewHealthHandler returns a HealthHandler that starts out serving.
func NewHealthHandler() *HealthHandler {
	server := health.NewServer()
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return &HealthHandler{server: server}
}

// Server returns the gRPC health service implementation.
func (h *HealthHandler) Server() healthpb.HealthServer {
	return h.server
}

// Shutdown flips every service to NOT_SERVING.
func (h *HealthHandler) Shutdown() {
	h.server.Shutdown()
}

// Register mounts GET /healthz on mux.
func (h *HealthHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodGet, "/healthz", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	resp, err := h.server.Check(r.Context(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "UNKNOWN"})
		return
	}
	status := http.StatusOK
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"status": resp.GetStatus().String()})
}
