package datasources

import (
	"context"

	"github.com/jbeshir/game-discovery/internal/domain"
)

// SimilarityRepository finds games close to a game in embedding space.
type SimilarityRepository interface {
	SimilarGameLister
}

type SimilarGameLister interface {
	// ListSimilarGames returns up to limit games similar to gameID, best first, excluding gameID.
	// An empty result means the driver has nothing for gameID.
	ListSimilarGames(ctx context.Context, gameID string, limit int) ([]domain.SimilarItem, error)
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarGames(_ context.Context, _ string, _ int) ([]domain.SimilarItem, error) {
	return nil, nil
}
