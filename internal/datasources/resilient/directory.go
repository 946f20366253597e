package resilient

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

var _ datasources.DirectoryRepository = (*Directory)(nil)

type Directory struct {
	next    datasources.DirectoryRepository
	backend *Backend
}

func NewDirectory(next datasources.DirectoryRepository, backend *Backend) *Directory {
	return &Directory{next: next, backend: backend}
}

func (d *Directory) FetchGames(ctx context.Context, ids []string) (map[string]domain.Game, error) {
	return call(ctx, d.backend, "fetch games", func(ctx context.Context) (map[string]domain.Game, error) {
		return d.next.FetchGames(ctx, ids)
	})
}

func (d *Directory) GetCommunity(ctx context.Context, id string) (domain.Community, error) {
	return call(ctx, d.backend, "get community", func(ctx context.Context) (domain.Community, error) {
		return d.next.GetCommunity(ctx, id)
	})
}

func (d *Directory) GetServer(ctx context.Context, id string) (domain.Server, error) {
	return call(ctx, d.backend, "get server", func(ctx context.Context) (domain.Server, error) {
		return d.next.GetServer(ctx, id)
	})
}

func (d *Directory) GetPlayer(ctx context.Context, userID string) (domain.Player, error) {
	return call(ctx, d.backend, "get player", func(ctx context.Context) (domain.Player, error) {
		return d.next.GetPlayer(ctx, userID)
	})
}

func (d *Directory) ListUserCommunities(ctx context.Context, userID string) ([]domain.Community, error) {
	return call(ctx, d.backend, "list user communities", func(ctx context.Context) ([]domain.Community, error) {
		return d.next.ListUserCommunities(ctx, userID)
	})
}

// counted carries a candidate page and its total through call.
type counted[T any] struct {
	items []T
	total int
}

func (d *Directory) ListCandidateCommunities(
	ctx context.Context, q domain.CandidateQuery,
) ([]domain.Community, int, error) {
	res, err := call(ctx, d.backend, "list candidate communities",
		func(ctx context.Context) (counted[domain.Community], error) {
			items, total, err := d.next.ListCandidateCommunities(ctx, q)
			return counted[domain.Community]{items: items, total: total}, err
		})
	return res.items, res.total, err
}

func (d *Directory) ListCandidateServers(ctx context.Context, q domain.CandidateQuery) ([]domain.Server, int, error) {
	res, err := call(ctx, d.backend, "list candidate servers",
		func(ctx context.Context) (counted[domain.Server], error) {
			items, total, err := d.next.ListCandidateServers(ctx, q)
			return counted[domain.Server]{items: items, total: total}, err
		})
	return res.items, res.total, err
}

func (d *Directory) ListCandidatePlayers(ctx context.Context, q domain.CandidateQuery) ([]domain.Player, int, error) {
	res, err := call(ctx, d.backend, "list candidate players",
		func(ctx context.Context) (counted[domain.Player], error) {
			items, total, err := d.next.ListCandidatePlayers(ctx, q)
			return counted[domain.Player]{items: items, total: total}, err
		})
	return res.items, res.total, err
}

func (d *Directory) ListCandidateGames(ctx context.Context, q domain.CandidateQuery) ([]domain.Game, int, error) {
	res, err := call(ctx, d.backend, "list candidate games",
		func(ctx context.Context) (counted[domain.Game], error) {
			items, total, err := d.next.ListCandidateGames(ctx, q)
			return counted[domain.Game]{items: items, total: total}, err
		})
	return res.items, res.total, err
}

func (d *Directory) ListTrendingCommunities(
	ctx context.Context, since time.Time, limit int,
) ([]domain.Community, error) {
	return call(ctx, d.backend, "list trending communities", func(ctx context.Context) ([]domain.Community, error) {
		return d.next.ListTrendingCommunities(ctx, since, limit)
	})
}

func (d *Directory) ListTrendingGames(ctx context.Context, since time.Time, limit int) ([]domain.Game, error) {
	return call(ctx, d.backend, "list trending games", func(ctx context.Context) ([]domain.Game, error) {
		return d.next.ListTrendingGames(ctx, since, limit)
	})
}

func (d *Directory) ListTrendingServers(ctx context.Context, limit int) ([]domain.Server, error) {
	return call(ctx, d.backend, "list trending servers", func(ctx context.Context) ([]domain.Server, error) {
		return d.next.ListTrendingServers(ctx, limit)
	})
}
