package handlers

import (
	"net/http"

	"github.com/cueclub/tournament-system/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) ReportResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	var input struct {
		WinnerParticipantID int  `json:"winner_participant_id"`
		GameID              *int `json:"game_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	outcome, err := h.matchService.ReportResult(r.Context(), matchID, input.WinnerParticipantID, input.GameID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{
		"match":                outcome.Match,
		"updated_matches":      outcome.UpdatedMatches,
		"tournament_completed": outcome.TournamentCompleted,
	})
}

func (h *MatchHandler) ListByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := urlParamInt(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	matches, err := h.matchService.ListByTournament(r.Context(), tournamentID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"matches": matches})
}
