package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parisxmas/featuredesk/internal/auth"
	"github.com/parisxmas/featuredesk/internal/handler"
	mw "github.com/parisxmas/featuredesk/internal/middleware"
)

func New(
	jwtSecret string,
	corsOrigin string,
	authH *handler.AuthHandler,
	subH *handler.SubmissionHandler,
	voteH *handler.VoteHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(corsOrigin))

	// Public intake surface — the form posts here without credentials.
	r.Post("/login", authH.Login)
	r.Post("/submit", subH.Submit)
	r.Post("/vote", voteH.Vote)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	// Admin reads
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))
		r.Get("/submissions", subH.List)
		r.Get("/votes", voteH.List)
	})

	return r
}
