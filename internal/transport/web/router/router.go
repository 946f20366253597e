package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/jbeshir/game-discovery/internal/metrics"
	"github.com/jbeshir/game-discovery/internal/transport/web/controller"
)

// kindPattern restricts {kind} so that fixed paths under /v1/discover are not taken as kinds.
const kindPattern = "{kind:communities|community|servers|server|players|player|games|game}"

// Commands are the operations the HTTP API exposes.
type Commands struct {
	Discover            command.Command[domain.DiscoveryRequest, domain.DiscoveryResult]
	Trending            command.Command[command.TrendingRequest, []domain.MatchScore]
	SimilarTo           command.Command[command.SimilarToRequest, []domain.MatchScore]
	RecordActions       command.Command[command.RecordActionsRequest, command.RecordActionsResult]
	RecordFeedback      command.Command[command.RecordFeedbackRequest, domain.DiscoveryFeedback]
	EngagementAnalytics command.Command[command.EngagementAnalyticsRequest, domain.EngagementReport]
	GetProfile          command.Command[command.GetOrBuildProfileRequest, domain.UserInterestProfile]
	UpdateProfile       command.Command[command.UpdateProfileRequest, domain.UserInterestProfile]
	GetPreferences      command.Command[string, domain.DiscoveryPreferences]
	UpdatePreferences   command.Command[command.UpdatePreferencesRequest, domain.DiscoveryPreferences]
}

// FeedConfig configures the trending communities RSS feed.
type FeedConfig struct {
	BaseURL          string
	AuthorName       string
	AuthorEmail      string
	CommunityURLBase string
}

func MakeRouter(
	cmds Commands,
	feed FeedConfig,
	trendingCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.Handle("/v1/discover/profile", requireAuthMiddleware(controller.ProfileGet{
		GetOrBuildCmd: cmds.GetProfile,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/discover/profile", requireAuthMiddleware(controller.ProfileUpdate{
		UpdateCmd: cmds.UpdateProfile,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/discover/preferences", requireAuthMiddleware(controller.PreferencesGet{
		GetCmd: cmds.GetPreferences,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/discover/preferences", requireAuthMiddleware(controller.PreferencesUpdate{
		UpdateCmd: cmds.UpdatePreferences,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/discover/analytics", requireAuthMiddleware(controller.EngagementAnalytics{
		AnalyticsCmd: cmds.EngagementAnalytics,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/discover/actions", requireAuthMiddleware(controller.ActionsRecord{
		RecordActionsCmd: cmds.RecordActions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/discover/actions/{action_id}/feedback", requireAuthMiddleware(controller.FeedbackRecord{
		RecordFeedbackCmd: cmds.RecordFeedback,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/discover/"+kindPattern, requireAuthMiddleware(controller.Discover{
		DiscoverCmd: cmds.Discover,
	})).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.TrendingCommunitiesRSS{
		{
			FeedHostname:     feed.BaseURL,
			FeedPath:         "/v1/trending/communities/rss",
			FeedAuthorName:   feed.AuthorName,
			FeedAuthorEmail:  feed.AuthorEmail,
			CommunityURLBase: feed.CommunityURLBase,
			TrendingCmd:      cmds.Trending,
			CacheMaxAge:      trendingCacheMaxAge,
		},
	}

	for _, f := range rssFeeds {
		r.Handle(f.FeedPath, f).Methods(http.MethodGet, http.MethodOptions)
	}

	r.Handle("/v1/trending/"+kindPattern, controller.Trending{
		TrendingCmd: cmds.Trending,
		CacheMaxAge: trendingCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/"+kindPattern+"/{id}/similar", requireAuthMiddleware(controller.SimilarList{
		SimilarCmd: cmds.SimilarTo,
	})).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
