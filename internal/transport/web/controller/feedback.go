package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type FeedbackRecord struct {
	RecordFeedbackCmd command.Command[command.RecordFeedbackRequest, domain.DiscoveryFeedback]
}

type feedbackRecordRequest struct {
	Signal domain.FeedbackSignal `json:"signal"`
	Rating *int                  `json:"rating,omitempty"`
}

func (c FeedbackRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actionID := mux.Vars(r)["action_id"]
	logger := domain.LoggerFromContext(r.Context()).With("action_id", actionID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body feedbackRecordRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeBadRequest(ctx, w, err, "unable to parse feedback")
		return
	}

	feedback, err := c.RecordFeedbackCmd.Execute(ctx, command.RecordFeedbackRequest{
		UserID: domain.UserIDFromContext(ctx),
		Feedback: domain.DiscoveryFeedback{
			ActionID: actionID,
			Signal:   body.Signal,
			Rating:   body.Rating,
		},
	})
	if err != nil {
		writeError(ctx, w, err, "unable to record feedback")
		return
	}

	writeJSONStatus(ctx, w, http.StatusCreated, feedback)
}
