package handlers

import (
	"net/http"

	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
	ratingService services.RatingService
}

func NewPlayerHandler(playerService services.PlayerService, ratingService services.RatingService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		ratingService: ratingService,
	}
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Nickname  *string `json:"nickname"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	player := &models.Player{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Nickname:  input.Nickname,
	}
	if err := h.playerService.Create(r.Context(), player); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	player, err := h.playerService.GetByID(r.Context(), id)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

// List returns the club ladder ordered by rating.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_archived") != "true"
	players, err := h.playerService.List(r.Context(), activeOnly)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"players": players})
}

func (h *PlayerHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := h.playerService.Archive(r.Context(), id); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandler) RecordSinglesGame(w http.ResponseWriter, r *http.Request) {
	var input struct {
		WinnerID int `json:"winner_id"`
		LoserID  int `json:"loser_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	game, err := h.ratingService.RecordSinglesGame(r.Context(), input.WinnerID, input.LoserID)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (h *PlayerHandler) RecordDoublesGame(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Team1       [2]int `json:"team1"`
		Team2       [2]int `json:"team2"`
		WinningTeam int    `json:"winning_team"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	game, err := h.ratingService.RecordDoublesGame(r.Context(), input.Team1, input.Team2, input.WinningTeam)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}
