package handler

import (
	"log"
	"net/http"

	"github.com/parisxmas/featuredesk/internal/models"
	"github.com/parisxmas/featuredesk/internal/service"
)

type VoteHandler struct {
	votes *service.VoteService
}

func NewVoteHandler(votes *service.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Vote handles POST /vote. The body is either {"votes":[...]} or a single
// vote object; the response carries the post-batch totals for every feature
// touched.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var payload models.VotePayload
	if err := readJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vote payload")
		return
	}

	totals, err := h.votes.Apply(r.Context(), payload.Votes)
	if err != nil {
		log.Printf("vote batch failed: %v", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"totals": totals,
	})
}

// List handles GET /votes (JWT protected).
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.votes.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"votes": recs,
		"total": len(recs),
	})
}
