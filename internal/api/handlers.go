package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	coordinator "github.com/mwansa-dev/voteledger/internal/coordinator"
)

func (server *Server) submitVote(w http.ResponseWriter, r *http.Request) {
	var request coordinator.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := server.coordinator.SubmitVote(r.Context(), &request)
	if err != nil {
		writeError(w, submitStatusCode(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// A recorded vote is always reported as success, even when notarization
// failed. The notarized flag in the result carries the degradation.
func submitStatusCode(err error) int {
	switch {
	case errors.Is(err, coordinator.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, coordinator.ErrElectionNotActive):
		return http.StatusConflict
	case errors.Is(err, coordinator.ErrNotEligible):
		return http.StatusForbidden
	case errors.Is(err, coordinator.ErrDuplicateVote):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (server *Server) voteStatus(w http.ResponseWriter, r *http.Request) {
	voterId := r.URL.Query().Get("voterId")
	electionId := r.URL.Query().Get("electionId")

	if voterId == "" || electionId == "" {
		writeError(w, http.StatusBadRequest, "voterId and electionId are required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"hasVoted": server.coordinator.HasVoted(voterId, electionId),
	})
}

func (server *Server) electionResults(w http.ResponseWriter, r *http.Request) {
	electionId := r.PathValue("id")
	if electionId == "" {
		writeError(w, http.StatusBadRequest, "election id is required")
		return
	}

	writeJSON(w, http.StatusOK, server.coordinator.GetElectionResults(electionId))
}

func (server *Server) voteHistory(w http.ResponseWriter, r *http.Request) {
	voterId := r.PathValue("id")
	if voterId == "" {
		writeError(w, http.StatusBadRequest, "voter id is required")
		return
	}

	writeJSON(w, http.StatusOK, server.coordinator.GetVoteHistory(voterId))
}

func (server *Server) auditRecent(w http.ResponseWriter, r *http.Request) {
	events, err := server.recorder.RecentChanges(queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query audit events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (server *Server) auditCritical(w http.ResponseWriter, r *http.Request) {
	events, err := server.recorder.CriticalChanges(queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query audit events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (server *Server) auditStats(w http.ResponseWriter, r *http.Request) {
	stats, err := server.recorder.Stats(nil, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute audit statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func queryLimit(r *http.Request) int {
	limit := 50

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return limit
}
