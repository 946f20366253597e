package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jbeshir/game-discovery/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

// stubCommand adapts a function to command.Command.
type stubCommand[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f stubCommand[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}
