package handlers

import (
	"net/http"

	"github.com/cueclub/tournament-system/models"
	"github.com/cueclub/tournament-system/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Format      string  `json:"format"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	tournament := &models.Tournament{
		Name:        input.Name,
		Description: input.Description,
		Format:      models.TournamentFormat(input.Format),
	}
	if err := h.tournamentService.Create(r.Context(), tournament); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tournament)
}

func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	tournament, err := h.tournamentService.GetByID(r.Context(), id)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}

func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context())
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments})
}

func (h *TournamentHandler) Signup(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	var input struct {
		PlayerID   int `json:"player_id"`
		SelfRating int `json:"self_rating"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	participant, err := h.tournamentService.Signup(r.Context(), id, input.PlayerID, input.SelfRating)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, participant)
}

// Activate seeds the field and generates the bracket.
func (h *TournamentHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := h.tournamentService.Activate(r.Context(), id); err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"status": models.TournamentStatusActive})
}

func (h *TournamentHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "id")
	if err != nil {
		badRequestResponse(w, err)
		return
	}
	tournament, err := h.tournamentService.GetBracket(r.Context(), id)
	if err != nil {
		serviceErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}
