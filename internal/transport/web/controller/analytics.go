package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

const defaultAnalyticsWindow = 30 * 24 * time.Hour

type EngagementAnalytics struct {
	AnalyticsCmd command.Command[command.EngagementAnalyticsRequest, domain.EngagementReport]
	Now          func() time.Time
}

func (c EngagementAnalytics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	from, to, err := analyticsWindowFromQuery(r.URL.Query(), now())
	if err != nil {
		writeBadRequest(ctx, w, err, "unable to parse analytics window")
		return
	}

	report, err := c.AnalyticsCmd.Execute(ctx, command.EngagementAnalyticsRequest{
		UserID: domain.UserIDFromContext(ctx),
		From:   from,
		To:     to,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to build engagement report")
		return
	}

	writeJSON(ctx, w, report, 0)
}

// analyticsWindowFromQuery reads "from" and "to" as RFC 3339 timestamps or YYYY-MM-DD dates.
// The window defaults to the 30 days before now.
func analyticsWindowFromQuery(q url.Values, now time.Time) (time.Time, time.Time, error) {
	to := now
	if q.Has("to") {
		t, err := parseTimeParam(q.Get("to"))
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
		}
		to = t
	}

	from := to.Add(-defaultAnalyticsWindow)
	if q.Has("from") {
		t, err := parseTimeParam(q.Get("from"))
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
		}
		from = t
	}
	return from, to, nil
}

func parseTimeParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
