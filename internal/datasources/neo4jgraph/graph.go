package neo4jgraph

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Graph answers relationship queries from a social graph of
// (:User)-[:FRIENDS_WITH]-(:User), (:User)-[:BLOCKED]->(:User) and (:User)-[:MEMBER_OF]->(:Community).
type Graph struct {
	driver   neo4j.DriverWithContext
	database string
}

var _ datasources.RelationshipRepository = (*Graph)(nil)

func Connect(ctx context.Context, uri, user, password, database string) (*Graph, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""), func(cfg *neo4j.Config) {
		cfg.MaxConnectionPoolSize = 50
		cfg.SocketConnectTimeout = 10 * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verifying neo4j connectivity: %w", err)
	}

	return &Graph{driver: driver, database: database}, nil
}

func (g *Graph) Close(ctx context.Context) error {
	return g.driver.Close(ctx)
}

const blockedUsersQuery = `
MATCH (u:User {id: $user_id})-[:BLOCKED]-(other:User)
RETURN DISTINCT other.id AS id`

func (g *Graph) ListBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	records, err := g.read(ctx, blockedUsersQuery, map[string]any{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("listing blocked users of [%s]: %w", userID, err)
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		id, err := stringValue(rec, "id")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

const mutualFriendsQuery = `
MATCH (:User {id: $user_id})-[:FRIENDS_WITH]-(f:User)-[:FRIENDS_WITH]-(:User {id: $other_id})
RETURN count(DISTINCT f) AS n`

func (g *Graph) CountMutualFriends(ctx context.Context, userID, otherUserID string) (int, error) {
	n, err := g.readCount(ctx, mutualFriendsQuery, map[string]any{"user_id": userID, "other_id": otherUserID})
	if err != nil {
		return 0, fmt.Errorf("counting mutual friends of [%s] and [%s]: %w", userID, otherUserID, err)
	}
	return n, nil
}

const friendMembersQuery = `
MATCH (:User {id: $user_id})-[:FRIENDS_WITH]-(f:User)-[:MEMBER_OF]->(:Community {id: $community_id})
RETURN count(DISTINCT f) AS n`

func (g *Graph) CountFriendMembers(ctx context.Context, userID, communityID string) (int, error) {
	n, err := g.readCount(ctx, friendMembersQuery, map[string]any{"user_id": userID, "community_id": communityID})
	if err != nil {
		return 0, fmt.Errorf("counting friends of [%s] in community [%s]: %w", userID, communityID, err)
	}
	return n, nil
}

func (g *Graph) read(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := g.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: g.database,
	})
	defer func() {
		_ = session.Close(ctx)
	}()

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}
	return out.([]*neo4j.Record), nil
}

func (g *Graph) readCount(ctx context.Context, query string, params map[string]any) (int, error) {
	records, err := g.read(ctx, query, params)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	return intValue(records[0], "n")
}

func stringValue(rec *neo4j.Record, key string) (string, error) {
	v, ok := rec.Get(key)
	if !ok {
		return "", fmt.Errorf("record missing key [%s]", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("record key [%s] is %T, not string", key, v)
	}
	return s, nil
}

func intValue(rec *neo4j.Record, key string) (int, error) {
	v, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("record missing key [%s]", key)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("record key [%s] is %T, not int64", key, v)
	}
	return int(n), nil
}
