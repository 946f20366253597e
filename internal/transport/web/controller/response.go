package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 * 1024

type errorResponse struct {
	Message string `json:"message"`
}

// statusForError maps domain error categories onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrTransientDependency):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes the matching status. Server-side failures get a generic message.
func writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	logger := domain.LoggerFromContext(ctx)
	status := statusForError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		message = http.StatusText(status)
	} else {
		logger.WarnContext(ctx, msg, "error", err, "status", status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: message})
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	writeError(ctx, w, fmt.Errorf("%w: %w", domain.ErrValidation, err), msg)
}

// writeJSON writes v as the response body. A zero cacheMaxAge sends no Cache-Control header.
func writeJSON(ctx context.Context, w http.ResponseWriter, v any, cacheMaxAge time.Duration) {
	if cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(cacheMaxAge.Seconds())))
	}
	writeJSONStatus(ctx, w, http.StatusOK, v)
}

func writeJSONStatus(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("unable to decode request body: %w", err)
	}
	return nil
}

// MatchListResponse is the envelope for lists of scored candidates.
type MatchListResponse struct {
	Data     []domain.MatchScore `json:"data"`
	Metadata MatchListMetadata   `json:"metadata"`
}

type MatchListMetadata struct {
	Kind  domain.CandidateKind `json:"kind"`
	Count int                  `json:"count"`
}

func newMatchListResponse(kind domain.CandidateKind, items []domain.MatchScore) MatchListResponse {
	if items == nil {
		items = []domain.MatchScore{}
	}
	return MatchListResponse{
		Data:     items,
		Metadata: MatchListMetadata{Kind: kind, Count: len(items)},
	}
}
