package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/cricket-score/internal/metrics"
	"github.com/mauv0809/cricket-score/internal/stats"
	"github.com/vmihailenco/msgpack/v5"
)

// ContentTypeMsgpack is served instead of JSON when the client's Accept
// header asks for it.
const ContentTypeMsgpack = "application/msgpack"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func wantsMsgpack(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, ContentTypeMsgpack) || strings.Contains(accept, "application/x-msgpack")
}

// respond writes data as JSON, or as MessagePack when the client asks for it.
// MessagePack field names follow the json tags so both encodings agree.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if wantsMsgpack(r) {
		w.Header().Set("Content-Type", ContentTypeMsgpack)
		w.WriteHeader(status)
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(data); err != nil {
			log.FromContext(r.Context()).Error("Failed to encode msgpack response", "error", err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.FromContext(r.Context()).Error("Failed to encode JSON response", "error", err)
	}
}

// RespondError writes an ErrorResponse with the given status.
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respond(w, r, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// respondStoreError turns a store error into a 404 for missing records and a
// 500 for everything else, counting the latter.
func respondStoreError(w http.ResponseWriter, r *http.Request, m metrics.Metrics, op string, err error) {
	if errors.Is(err, stats.ErrNotFound) {
		log.FromContext(r.Context()).Debug("Record not found", "operation", op, "error", err)
		RespondError(w, r, http.StatusNotFound, err.Error())
		return
	}
	m.IncStoreErrors(op)
	log.FromContext(r.Context()).Error("Store call failed", "operation", op, "error", err)
	RespondError(w, r, http.StatusInternalServerError, "failed to load statistics")
}

// idParam reads the numeric {id} URL parameter. Routes only match digits, so
// a parse failure means the value overflowed and is treated as not found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// matchView is a match together with its display label.
type matchView struct {
	stats.Match
	Label string `json:"label"`
}

func newMatchView(m stats.Match) matchView {
	return matchView{Match: m, Label: m.Label()}
}

func newMatchViews(ms []stats.Match) []matchView {
	views := make([]matchView, 0, len(ms))
	for _, m := range ms {
		views = append(views, newMatchView(m))
	}
	return views
}
