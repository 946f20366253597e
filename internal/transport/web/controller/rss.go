package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

const rssFeedSize = 50

// TrendingCommunitiesRSS publishes the trending communities list as an RSS feed.
type TrendingCommunitiesRSS struct {
	FeedHostname     string
	FeedPath         string
	FeedAuthorName   string
	FeedAuthorEmail  string
	CommunityURLBase string
	TrendingCmd      command.Command[command.TrendingRequest, []domain.MatchScore]
	CacheMaxAge      time.Duration
}

func (c TrendingCommunitiesRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	items, err := c.TrendingCmd.Execute(ctx, command.TrendingRequest{
		Kind:  domain.CandidateKindCommunity,
		Limit: rssFeedSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch trending communities for feed", "error", err)
		w.WriteHeader(statusForError(err))
		return
	}

	feed := &feeds.Feed{
		Title:       "Trending Communities",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Communities growing fastest right now",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, item := range items {
		community := item.Community
		if community == nil {
			continue
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          community.ID,
			IsPermaLink: "false",
			Title:       community.Name,
			Link:        &feeds.Link{Href: c.CommunityURLBase + community.ID},
			Description: fmt.Sprintf("%s (%d members, %d joined recently)",
				community.Description, community.MemberCount, community.RecentJoins),
			Created: community.CreatedAt,
			Updated: community.LastActiveAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
