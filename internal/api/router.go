package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates the application router with all routes mounted.
// allowedOrigins feeds the CORS middleware; an empty list allows any origin.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(h *Handler, allowedOrigins []string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(allowedOrigins))

	// Root info and health checks.
	r.Get("/", rootInfo)
	r.Get("/health/live", healthOK)
	r.Get("/health/ready", healthOK)

	// Notes and favorites.
	r.Route("/notes", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/category/{name}", h.NotesByCategory)
		r.Get("/all", h.AllNotes)
		r.Get("/search/", h.SearchNotes)
		r.Post("/create", h.CreateNote)
		r.Post("/favorites/toggle", h.ToggleFavorite)
		r.Get("/favorites/{userID}", h.UserFavorites)
		r.Get("/{id}", h.NoteByID)
	})

	// Comments.
	r.Route("/comments", func(r chi.Router) {
		r.Get("/note/{noteID}", h.CommentsByNote)
		r.Post("/create", h.CreateComment)
		r.Get("/all", h.AllComments)
		r.Delete("/{id}", h.DeleteComment)
	})

	// Auth.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/users", h.ListUsers)
	})

	// SSE endpoint.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}

func rootInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Academic Notes API",
		"version": "1.0.0",
		"status":  "active",
		"endpoints": map[string]string{
			"auth":     "/auth",
			"notes":    "/notes",
			"comments": "/comments",
		},
	})
}

func healthOK(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
