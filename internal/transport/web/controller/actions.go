package controller

import (
	"net/http"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type ActionsRecord struct {
	RecordActionsCmd command.Command[command.RecordActionsRequest, command.RecordActionsResult]
}

type actionsRecordRequest struct {
	Actions []domain.DiscoveryAction `json:"actions"`
}

type ActionsRecordResponse struct {
	ActionIDs []string `json:"action_ids"`
	Dropped   int      `json:"dropped"`
}

func (c ActionsRecord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body actionsRecordRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeBadRequest(ctx, w, err, "unable to parse actions")
		return
	}

	res, err := c.RecordActionsCmd.Execute(ctx, command.RecordActionsRequest{
		UserID:  domain.UserIDFromContext(ctx),
		Actions: body.Actions,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to record actions")
		return
	}

	writeJSONStatus(ctx, w, http.StatusAccepted, ActionsRecordResponse{ActionIDs: res.ActionIDs, Dropped: res.Dropped})
}
