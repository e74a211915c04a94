package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/lookup"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const (
	isoLayout      = "2006-01-02T15:04:05.000Z"
	maxRequestBody = 4 << 10
)

type lookupRequest struct {
	Address *string `json:"address"`
}

type lookupSources struct {
	Summary string `json:"summary"`
	History string `json:"history"`
	Price   string `json:"price"`
}

type lookupResponse struct {
	Address                 string        `json:"address"`
	AddressType             string        `json:"addressType"`
	FirstReceive            string        `json:"firstReceive"`
	FirstReceiveApproximate bool          `json:"firstReceiveApproximate"`
	LastActivity            string        `json:"lastActivity"`
	LastOutgoing            *string       `json:"lastOutgoing,omitempty"`
	TotalReceived           json.Number   `json:"totalReceived"`
	TotalSent               json.Number   `json:"totalSent"`
	CurrentBalance          json.Number   `json:"currentBalance"`
	TxCount                 uint64        `json:"txCount"`
	HoldDays                int64         `json:"holdDays"`
	EverSold                bool          `json:"everSold"`
	BTCPrice                json.Number   `json:"btcPrice"`
	Rank                    string        `json:"rank"`
	Sources                 lookupSources `json:"sources"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// LookupHandler serves wallet lookups over REST.
type LookupHandler struct {
	service LookupService
	logger  *zap.Logger
}

// NewLookupHandler returns a LookupHandler instance.
func NewLookupHandler(service LookupService, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{service: service, logger: logger}
}

// Register mounts the lookup routes on mux.
func (h *LookupHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodPost, "/api/lookup", h.handlePost); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/api/v1/lookup/{address}", h.handleGet)
}

func (h *LookupHandler) handlePost(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req lookupRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil || req.Address == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid address"})
		return
	}
	h.lookup(w, r, *req.Address)
}

func (h *LookupHandler) handleGet(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.lookup(w, r, params["address"])
}

func (h *LookupHandler) lookup(w http.ResponseWriter, r *http.Request, raw string) {
	result, err := h.service.Lookup(r.Context(), raw)
	if err != nil {
		kind := lookup.KindOf(err)
		status := statusFor(kind)
		if status >= http.StatusInternalServerError {
			h.logger.Warn("lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		}
		writeJSON(w, status, errorResponse{Error: messageFor(kind)})
		return
	}
	writeJSON(w, http.StatusOK, newLookupResponse(result))
}

func newLookupResponse(res *model.LookupResult) lookupResponse {
	out := lookupResponse{
		Address:                 res.Address,
		AddressType:             res.AddressType,
		FirstReceive:            formatTime(res.FirstReceive),
		FirstReceiveApproximate: res.FirstReceiveApproximate,
		LastActivity:            formatTime(res.LastActivity),
		TotalReceived:           json.Number(res.TotalReceived.String()),
		TotalSent:               json.Number(res.TotalSent.String()),
		CurrentBalance:          json.Number(res.CurrentBalance.String()),
		TxCount:                 res.TxCount,
		HoldDays:                res.HoldDays,
		EverSold:                res.EverSold,
		BTCPrice:                json.Number(res.Price.String()),
		Rank:                    string(res.Rank),
		Sources: lookupSources{
			Summary: res.Sources.Summary,
			History: res.Sources.History,
			Price:   res.Sources.Price,
		},
	}
	if res.LastOutgoing != nil {
		s := formatTime(*res.LastOutgoing)
		out.LastOutgoing = &s
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func statusFor(kind lookup.Kind) int {
	switch kind {
	case lookup.KindInvalidFormat:
		return http.StatusBadRequest
	case lookup.KindNotFound:
		return http.StatusNotFound
	case lookup.KindUpstreamUnavailable:
		return http.StatusBadGateway
	case lookup.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(kind lookup.Kind) string {
	switch kind {
	case lookup.KindInvalidFormat:
		return "Invalid Bitcoin address format"
	case lookup.KindNotFound:
		return "Address has no transactions"
	case lookup.KindUpstreamUnavailable:
		return "Could not look up address. Try again."
	case lookup.KindTimeout:
		return "Request timed out. Try again."
	case lookup.KindHistoryUnresolved:
		return "Could not determine when this address first received BTC. Try again."
	default:
		return "Something went wrong. Try again."
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
