package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/export"
	"github.com/drumst0ck/koi-calendar/internal/i18n"
	"github.com/drumst0ck/koi-calendar/internal/logging"
	"github.com/drumst0ck/koi-calendar/internal/metrics"
	"github.com/drumst0ck/koi-calendar/internal/poller"
	"github.com/drumst0ck/koi-calendar/internal/schedule"
)

type nowFunc func() time.Time

// Refresher triggers one immediate fetch cycle.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Handler wires HTTP routes to the domain service and the schedule pipeline.
type Handler struct {
	svc       *domain.Service
	logger    *slog.Logger
	metrics   *metrics.Recorder
	refresher Refresher
	statusFn  func() poller.Status
	now       nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *domain.Service, logger *slog.Logger, recorder *metrics.Recorder, refresher Refresher, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:       svc,
		logger:    logger,
		metrics:   recorder,
		refresher: refresher,
		statusFn:  statusFn,
		now:       time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness based on the poller's recent fetch history.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]any{
			"status":               "not ready",
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Matches returns the current snapshot in display order, optionally filtered
// by an exact category. Ordering is evaluated against request time: upcoming
// soonest-first, then past most-recent-first, then undated in row order.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	category := r.URL.Query().Get("category")
	ordered := schedule.Order(h.svc.Matches(), category, h.now())
	h.writeJSON(w, nethttp.StatusOK, domain.NewMatchesResponse(ordered))
}

// Categories returns the distinct category labels for the filter control.
func (h *Handler) Categories(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string][]string{
		"categories": schedule.Categories(h.svc.Matches()),
	})
}

// MatchSubroute dispatches /api/matches/{id}/(streams|calendar).
func (h *Handler) MatchSubroute(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/matches/")
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 2)
	if parts[0] == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing match id")
		return
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil || id < 1 {
		h.writeError(w, nethttp.StatusBadRequest, fmt.Sprintf("invalid match id %q", parts[0]))
		return
	}

	action := ""
	if len(parts) == 2 {
		action = parts[1]
	}
	switch action {
	case "streams":
		h.matchStreams(w, r, id)
	case "calendar":
		h.matchCalendar(w, r, id)
	case "":
		h.matchByID(w, id)
	default:
		h.writeError(w, nethttp.StatusNotFound, "unknown match action "+action)
	}
}

func (h *Handler) matchByID(w nethttp.ResponseWriter, id int) {
	match, ok := h.svc.MatchByID(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, match)
}

func (h *Handler) matchStreams(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	match, ok := h.svc.MatchByID(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}
	links := schedule.ResolveStreams(match.Stream, match.StreamURL)
	if links == nil {
		links = []domain.StreamLink{}
	}
	h.writeJSON(w, nethttp.StatusOK, domain.StreamsResponse{MatchID: match.ID, Streams: links})
}

// matchCalendar serves the calendar exports for one match: deep links as
// JSON, or the ICS file when format=ics. An undated match is a user-facing
// error; nothing partial is ever written.
func (h *Handler) matchCalendar(w nethttp.ResponseWriter, r *nethttp.Request, id int) {
	match, ok := h.svc.MatchByID(id)
	if !ok {
		h.recordExport("not_found")
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}

	event, err := export.Format(match, h.now())
	if err != nil {
		h.recordExport("undated")
		logging.Warn(h.logger, "calendar export rejected", logging.FieldMatchID, id, "error", err)
		h.writeError(w, nethttp.StatusUnprocessableEntity, err.Error())
		return
	}
	h.recordExport("ok")

	if r.URL.Query().Get("format") == "ics" {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("match-%d.ics", match.ID)))
		w.WriteHeader(nethttp.StatusOK)
		if _, writeErr := w.Write([]byte(event.ICS)); writeErr != nil && h.logger != nil {
			h.logger.Error("failed to write ics response", "error", writeErr)
		}
		return
	}

	h.writeJSON(w, nethttp.StatusOK, domain.CalendarLinks{
		GoogleURL:  event.GoogleURL,
		OutlookURL: event.OutlookURL,
	})
}

// Refresh runs one fetch cycle on demand; this is the manual retry action.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "use POST")
		return
	}
	if h.refresher == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "refresh unavailable")
		return
	}

	count, err := h.refresher.Refresh(r.Context())
	if err != nil {
		logging.Warn(h.logger, "manual refresh failed",
			logging.FieldRequestID, requestIDFromContext(r.Context()),
			"error", err,
		)
		h.writeError(w, nethttp.StatusBadGateway, "schedule refresh failed: "+err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{"status": "refreshed", "total": count})
}

// Locale reads (GET) or stores (PUT/POST) the display-language preference
// cookie. Unsupported values fall back to the default locale.
func (h *Handler) Locale(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		locale := i18n.DefaultLocale
		if c, err := r.Cookie(i18n.CookieName); err == nil {
			locale = i18n.Normalize(c.Value)
		}
		h.writeJSON(w, nethttp.StatusOK, map[string]any{
			"locale":    locale,
			"supported": i18n.Supported(),
		})
	case nethttp.MethodPut, nethttp.MethodPost:
		var body struct {
			Locale string `json:"locale"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid body: expected {\"locale\": ...}")
			return
		}
		if !i18n.IsSupported(body.Locale) {
			h.writeError(w, nethttp.StatusBadRequest, fmt.Sprintf("unsupported locale %q", body.Locale))
			return
		}
		nethttp.SetCookie(w, &nethttp.Cookie{
			Name:   i18n.CookieName,
			Value:  body.Locale,
			Path:   "/",
			MaxAge: i18n.CookieMaxAge,
		})
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"locale": body.Locale})
	default:
		h.writeError(w, nethttp.StatusMethodNotAllowed, "use GET or PUT")
	}
}

func (h *Handler) recordExport(result string) {
	if h.metrics != nil {
		h.metrics.RecordExport(result)
	}
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
