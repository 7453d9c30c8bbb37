package handler

import (
	"net/http"
	"time"

	"github.com/bagdasarian/team-voting/internal/domain"
	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/google/uuid"
)

const (
	RequestIDHeader      = "X-Request-ID"
	StorageWarningHeader = "X-Storage-Warning"
)

// responseWriter запоминает статус и перед записью заголовков добавляет
// предупреждения хранилища, собранные за время запроса
type responseWriter struct {
	http.ResponseWriter
	status   int
	warnings *document.Warnings
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.status != 0 {
		return
	}
	rw.status = statusCode
	for _, warning := range rw.warnings.Items() {
		rw.Header().Add(StorageWarningHeader, warning.Error())
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// WithLogging присваивает запросу идентификатор, собирает предупреждения хранилища
// и пишет строку лога по завершении
func (h *Handler) WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx, warnings := document.WithWarnings(r.Context())
		rw := &responseWriter{ResponseWriter: w, warnings: warnings}

		next(rw, r.WithContext(ctx))

		if rw.status == 0 {
			rw.status = http.StatusOK
		}
		h.logger.InfoContext(ctx, "request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"warnings", len(warnings.Items()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// RequireSession проверяет Basic-авторизацию и кладет domain.Session в контекст
func (h *Handler) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			h.handleError(w, r, domain.ErrUnauthorized)
			return
		}

		session, err := h.userService.Login(r.Context(), username, password)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		next(w, r.WithContext(domain.ContextWithSession(r.Context(), session)))
	}
}
