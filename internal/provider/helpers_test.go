package provider

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
)

const (
	genesisAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	segwitAddress  = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
)

func testAddress(t *testing.T, raw string) model.Address {
	t.Helper()
	decoded, err := btcutil.DecodeAddress(raw, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	shape := model.ShapeLegacy
	if raw[:3] == "bc1" {
		shape = model.ShapeSegwit
	}
	return model.NewAddress(raw, shape, decoded)
}

// route maps "path?query" (query optional) to a status and body.
type route struct {
	status int
	body   string
}

type recordingServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []string
}

func newServer(t *testing.T, routes map[string]route) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		rs.mu.Lock()
		rs.requests = append(rs.requests, key)
		rs.mu.Unlock()

		rt, ok := routes[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rt.status)
		_, _ = w.Write([]byte(rt.body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) Requests() []string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]string(nil), rs.requests...)
}

type recordedObservation struct {
	operation string
	err       error
}

type metricsRecorder struct {
	mu    sync.Mutex
	calls []recordedObservation
}

func (m *metricsRecorder) Observe(operation string, err error, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedObservation{operation: operation, err: err})
}
