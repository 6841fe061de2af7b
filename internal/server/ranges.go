package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ydelafollye/calendar-range-exporter-go/internal/render"
	"github.com/ydelafollye/calendar-range-exporter-go/pkg/timeutil"
)

// RangesHandler serves GET /v1/ranges: the period boundaries enclosing a
// reference instant. The instant comes from the "at" query parameter
// (RFC 3339, the offset in the value is honored as-is) or, when absent,
// from the clock in the configured location.
type RangesHandler struct {
	clock    timeutil.Clock
	location *time.Location
	logger   *slog.Logger
}

func NewRangesHandler(clock timeutil.Clock, location *time.Location, logger *slog.Logger) *RangesHandler {
	return &RangesHandler{
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

type rangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type rangesResponse struct {
	Reference string        `json:"reference"`
	Day       rangeResponse `json:"day"`
	Week      rangeResponse `json:"week"`
	Month     rangeResponse `json:"month"`
	Year      rangeResponse `json:"year"`
}

func (h *RangesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ref := h.clock.Now().In(h.location)
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'at' parameter: expected RFC 3339 timestamp")
			return
		}
		ref = parsed
	}

	rs := timeutil.Boundaries(ref)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		h.writeJSON(w, ref, rs)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, render.RangeSet(rs))
	default:
		writeError(w, http.StatusBadRequest, "invalid 'format' parameter: expected json or text")
	}
}

func (h *RangesHandler) writeJSON(w http.ResponseWriter, ref time.Time, rs timeutil.RangeSet) {
	resp := rangesResponse{
		Reference: render.Timestamp(ref),
		Day:       toRangeResponse(rs.Day),
		Week:      toRangeResponse(rs.Week),
		Month:     toRangeResponse(rs.Month),
		Year:      toRangeResponse(rs.Year),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode ranges response", "error", err)
	}
}

func toRangeResponse(r timeutil.Range) rangeResponse {
	return rangeResponse{
		Start: render.Timestamp(r.Start),
		End:   render.Timestamp(r.End),
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
