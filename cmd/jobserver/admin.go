package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nixpig/jobqueue/internal/jobqueue"
)

// defaultListLimit is the number of jobs listed when no limit is given.
const defaultListLimit = 20

type adminError struct {
	Code    int
	Message string
}

func (e adminError) Error() string {
	return e.Message
}

type adminResponse struct {
	Status int
	Body   any
}

type adminFunc func(r *http.Request) (*adminResponse, error)

type jobEntry struct {
	ID        int32     `json:"id"`
	Submitter string    `json:"submitter"`
	Category  string    `json:"category"`
	Algorithm string    `json:"algorithm"`
	InputPath string    `json:"input_path"`
	QueuedAt  time.Time `json:"queued_at"`
}

type listResponse struct {
	Jobs    []jobEntry `json:"jobs"`
	HasMore bool       `json:"has_more"`
}

type healthResponse struct {
	Status string `json:"status"`
	jobqueue.Stats
}

// adminHandler serves health and queue administration over plain HTTP. It's
// expected to be bound to a loopback address.
type adminHandler struct {
	manager *jobqueue.Manager
	logger  *slog.Logger
}

func newAdminRouter(manager *jobqueue.Manager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := &adminHandler{manager: manager, logger: logger}
	h.RegisterRoutes(r)

	return r
}

func newAdminServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// isLoopbackAddr returns whether addr only accepts connections from the local
// host.
func isLoopbackAddr(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}

	if host == "localhost" {
		return true
	}

	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}

func (h *adminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.handle(h.health))

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handle(h.list))
		r.Delete("/", h.handle(h.removeAll))
		r.Delete("/{id}", h.handle(h.remove))
	})
}

func (h *adminHandler) health(r *http.Request) (*adminResponse, error) {
	stats := h.manager.Stats()

	if stats.Stopping {
		return &adminResponse{
			Status: http.StatusServiceUnavailable,
			Body:   healthResponse{Status: "stopping", Stats: stats},
		}, nil
	}

	return &adminResponse{
		Status: http.StatusOK,
		Body:   healthResponse{Status: "ok", Stats: stats},
	}, nil
}

func (h *adminHandler) list(r *http.Request) (*adminResponse, error) {
	limit := defaultListLimit

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, adminError{
				Code:    http.StatusBadRequest,
				Message: "limit must be a number",
			}
		}

		limit = n
	}

	infos, hasMore, err := h.manager.List(limit)
	if err != nil {
		return nil, err
	}

	jobs := make([]jobEntry, 0, len(infos))
	for _, info := range infos {
		jobs = append(jobs, jobEntry{
			ID:        info.ID,
			Submitter: info.Submitter,
			Category:  info.Category.String(),
			Algorithm: info.Algorithm.String(),
			InputPath: info.InputPath,
			QueuedAt:  info.QueuedAt,
		})
	}

	return &adminResponse{
		Status: http.StatusOK,
		Body:   listResponse{Jobs: jobs, HasMore: hasMore},
	}, nil
}

func (h *adminHandler) remove(r *http.Request) (*adminResponse, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return nil, adminError{
			Code:    http.StatusBadRequest,
			Message: "id must be a number",
		}
	}

	if err := h.manager.RemoveOne(int32(id)); err != nil {
		return nil, err
	}

	h.logger.Info("job removed by admin", "job_id", id)

	return &adminResponse{Status: http.StatusNoContent}, nil
}

func (h *adminHandler) removeAll(r *http.Request) (*adminResponse, error) {
	n := h.manager.RemoveAll()

	h.logger.Info("jobs removed by admin", "count", n)

	return &adminResponse{
		Status: http.StatusOK,
		Body:   map[string]int{"removed": n},
	}, nil
}

// handle adapts an adminFunc to an http.HandlerFunc and is the single place
// responses are written.
func (h *adminHandler) handle(fn adminFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := fn(r)
		if err != nil {
			apiErr := h.mapError(err)
			h.writeJSON(w, apiErr.Code, map[string]string{"error": apiErr.Message})
			return
		}

		if resp.Body == nil {
			w.WriteHeader(resp.Status)
			return
		}

		h.writeJSON(w, resp.Status, resp.Body)
	}
}

// mapError translates jobqueue errors to HTTP errors.
func (h *adminHandler) mapError(err error) adminError {
	var apiErr adminError

	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, jobqueue.ErrInvalidArgument):
		return adminError{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, jobqueue.ErrJobNotFound):
		return adminError{Code: http.StatusNotFound, Message: err.Error()}
	default:
		h.logger.Error("admin request", "err", err)
		return adminError{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		}
	}
}

// writeJSON writes v as the response body. Headers have been sent by the time
// encoding fails, so the error can only be logged.
func (h *adminHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write admin response", "status", status, "err", err)
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Debug(
					"admin request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
