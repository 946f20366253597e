package pinecone

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

// gamesNamespace holds one or more vectors per game, with ids of the form "<game_id>_<n>" and a
// "game_id" metadata field.
const gamesNamespace = "games"

// maxVectorsPerGame bounds how many of a game's vectors are averaged into the search vector.
const maxVectorsPerGame = uint32(20)

type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) ListSimilarGames(
	ctx context.Context,
	gameID string,
	limit int,
) ([]domain.SimilarItem, error) {
	if limit > 1000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if gameID == "" || limit <= 0 {
		return nil, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: gamesNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() {
		_ = idxConn.Close()
	}()

	searchVector, err := c.getGameVector(ctx, idxConn, gameID)
	if err != nil {
		return nil, err
	}
	if searchVector == nil {
		return nil, nil
	}

	var results []domain.SimilarItem
	for len(results) < limit {
		found, err := c.searchBatch(ctx, idxConn, gameID, searchVector, &results, limit)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
	}
	return results, nil
}

// getGameVector averages the stored vectors of a game. It returns nil when the game has none.
func (c *Client) getGameVector(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	gameID string,
) ([]float32, error) {
	prefix := gameID + "_"
	limit := maxVectorsPerGame
	idsResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
		Prefix: &prefix,
		Limit:  &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing vector IDs for game [%s]: %w", gameID, err)
	}
	if len(idsResp.VectorIds) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(idsResp.VectorIds))
	for _, id := range idsResp.VectorIds {
		ids = append(ids, *id)
	}

	vectorsResp, err := idxConn.FetchVectors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors for game [%s]: %w", gameID, err)
	}

	values := make([][]float32, 0, len(vectorsResp.Vectors))
	for _, v := range vectorsResp.Vectors {
		values = append(values, v.Values)
	}
	return averageVectors(values), nil
}

func (c *Client) searchBatch(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	sourceGameID string,
	searchVector []float32,
	results *[]domain.SimilarItem,
	limit int,
) (bool, error) {
	filter, err := exclusionFilter(sourceGameID, *results)
	if err != nil {
		return false, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:         searchVector,
		TopK:           uint32(min(limit*2, 100)), //nolint:gosec // bounded above
		MetadataFilter: filter,
	})
	if err != nil {
		return false, fmt.Errorf("querying for similar games: %w", err)
	}

	found := false
	for _, match := range resp.Matches {
		id, err := gameIDFromVectorID(match.Vector.Id)
		if err != nil {
			return false, err
		}
		if id == sourceGameID || containsItem(*results, id) {
			continue
		}

		found = true
		if len(*results) < limit {
			*results = append(*results, domain.SimilarItem{ID: id, Score: float64(match.Score)})
		}
	}
	return found, nil
}

func exclusionFilter(sourceGameID string, results []domain.SimilarItem) (*pinecone.MetadataFilter, error) {
	exclude := []any{sourceGameID}
	for _, r := range results {
		exclude = append(exclude, r.ID)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"game_id": map[string]any{
			"$nin": exclude,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func gameIDFromVectorID(vectorID string) (string, error) {
	idx := strings.LastIndex(vectorID, "_")
	if idx <= 0 {
		return "", fmt.Errorf("unexpected pinecone vector ID format [%s]", vectorID)
	}
	return vectorID[:idx], nil
}

func containsItem(items []domain.SimilarItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			if i < len(result) {
				result[i] += v
			}
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}
	return result
}
