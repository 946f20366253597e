package datasources

import "context"

// RelationshipRepository answers social-graph questions about a user.
type RelationshipRepository interface {
	BlockedUserLister
	MutualFriendCounter
	FriendMemberCounter
}

type BlockedUserLister interface {
	// ListBlockedUserIDs returns users blocked by, or blocking, userID.
	ListBlockedUserIDs(ctx context.Context, userID string) ([]string, error)
}

type MutualFriendCounter interface {
	CountMutualFriends(ctx context.Context, userID, otherUserID string) (int, error)
}

type FriendMemberCounter interface {
	// CountFriendMembers counts userID's friends who are members of communityID.
	CountFriendMembers(ctx context.Context, userID, communityID string) (int, error)
}
