package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) ListBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	blocked := sqlbuilder.Select("blocked_user_id")
	blocked.From("user_blocks")
	blocked.Where(blocked.Equal("user_id", userID))

	blockedBy := sqlbuilder.Select("user_id")
	blockedBy.From("user_blocks")
	blockedBy.Where(blockedBy.Equal("blocked_user_id", userID))

	query, args := sqlbuilder.Union(blocked, blockedBy).Build()
	ids, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing blocked users of [%s]: %w", userID, err)
	}
	return ids, nil
}

func (r *Repository) CountMutualFriends(ctx context.Context, userID, otherUserID string) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("friendships a")
	sb.Join("friendships b", "b.friend_id = a.friend_id")
	sb.Where(
		sb.Equal("a.user_id", userID),
		sb.Equal("b.user_id", otherUserID),
	)

	n, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting mutual friends of [%s] and [%s]: %w", userID, otherUserID, err)
	}
	return n, nil
}

func (r *Repository) CountFriendMembers(ctx context.Context, userID, communityID string) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("friendships f")
	sb.Join("community_members m", "m.user_id = f.friend_id")
	sb.Where(
		sb.Equal("f.user_id", userID),
		sb.Equal("m.community_id", communityID),
	)

	n, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting friends of [%s] in community [%s]: %w", userID, communityID, err)
	}
	return n, nil
}
