package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cueclub/tournament-system/brackets"
	"github.com/cueclub/tournament-system/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are enforced by the CORS middleware in front of us.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebsocketHandler struct {
	hub               *brackets.Hub
	tournamentService services.TournamentService
}

func NewWebsocketHandler(hub *brackets.Hub, tournamentService services.TournamentService) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, tournamentService: tournamentService}
}

// ServeTournamentRoom upgrades the connection and subscribes the client to
// live bracket updates for one tournament.
func (h *WebsocketHandler) ServeTournamentRoom(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := urlParamInt(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, err)
		return
	}

	// Reject rooms for tournaments that do not exist before upgrading.
	if _, err := h.tournamentService.GetByID(r.Context(), tournamentID); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		serverErrorResponse(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed",
			slog.Int("tournament_id", tournamentID),
			slog.Any("error", err))
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: chi.URLParam(r, "tournamentID"),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
