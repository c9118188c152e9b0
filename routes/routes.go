package routes

import (
	"net/http"

	"github.com/cueclub/tournament-system/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Dependencies struct {
	PlayerHandler      *handlers.PlayerHandler
	TournamentHandler  *handlers.TournamentHandler
	MatchHandler       *handlers.MatchHandler
	WebsocketHandler   *handlers.WebsocketHandler
	CORSAllowedOrigins []string
}

func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/", deps.PlayerHandler.Create)
			r.Get("/", deps.PlayerHandler.List)
			r.Get("/{id}", deps.PlayerHandler.Get)
			r.Delete("/{id}", deps.PlayerHandler.Archive)
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/singles", deps.PlayerHandler.RecordSinglesGame)
			r.Post("/doubles", deps.PlayerHandler.RecordDoublesGame)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", deps.TournamentHandler.Create)
			r.Get("/", deps.TournamentHandler.List)
			r.Get("/{id}", deps.TournamentHandler.Get)
			r.Post("/{id}/signup", deps.TournamentHandler.Signup)
			r.Post("/{id}/activate", deps.TournamentHandler.Activate)
			r.Get("/{id}/bracket", deps.TournamentHandler.GetBracket)
			r.Get("/{tournamentID}/matches", deps.MatchHandler.ListByTournament)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/{id}/result", deps.MatchHandler.ReportResult)
		})
	})

	r.Get("/ws/tournaments/{tournamentID}", deps.WebsocketHandler.ServeTournamentRoom)

	return r
}
