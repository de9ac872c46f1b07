package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/authservice"
	"github.com/aruales/apuntes/internal/commentservice"
	"github.com/aruales/apuntes/internal/noteservice"
)

// Handler holds API route handlers.
type Handler struct {
	notes    *noteservice.Service
	comments *commentservice.Service
	auth     *authservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(notes *noteservice.Service, comments *commentservice.Service, auth *authservice.Service) *Handler {
	return &Handler{notes: notes, comments: comments, auth: auth}
}

// pathInt parses an integer URL parameter. The second return is false when
// the segment is not a positive-ranged integer.
func pathInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ListCategories handles GET /notes/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.notes.ListCategories(r.Context()))
}

// NotesByCategory handles GET /notes/category/{name}.
func (h *Handler) NotesByCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	res, err := h.notes.NotesByCategory(r.Context(), name)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("category '"+name+"' not found"))
		return
	}
	writeJSON(w, http.StatusOK, NotesResponse{Success: true, Notes: res.Notes, Count: res.Count})
}

// AllNotes handles GET /notes/all.
func (h *Handler) AllNotes(w http.ResponseWriter, r *http.Request) {
	res := h.notes.AllNotes(r.Context())
	writeJSON(w, http.StatusOK, NotesResponse{Success: true, Notes: res.Notes, Count: res.Count})
}

// NoteByID handles GET /notes/{id}.
func (h *Handler) NoteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("note id must be an integer"))
		return
	}
	note, err := h.notes.NoteByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("note with id "+strconv.Itoa(id)+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /notes/create.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	msg, err := h.notes.CreateNote(r.Context(), req.Title, req.Category, req.Author, req.Preview)
	if err != nil {
		slog.Error("create note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: msg})
}

// SearchNotes handles GET /notes/search/?query=.
func (h *Handler) SearchNotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("query parameter 'query' is required"))
		return
	}
	res := h.notes.SearchNotes(r.Context(), query)
	writeJSON(w, http.StatusOK, NotesResponse{Success: true, Notes: res.Notes, Count: res.Count})
}

// ToggleFavorite handles POST /notes/favorites/toggle.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoriteToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	msg, err := h.notes.ToggleFavorite(r.Context(), req.NoteID, req.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("note with id "+strconv.Itoa(req.NoteID)+" not found"))
			return
		}
		slog.Error("toggle favorite failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: msg})
}

// UserFavorites handles GET /notes/favorites/{user_id}.
func (h *Handler) UserFavorites(w http.ResponseWriter, r *http.Request) {
	res := h.notes.UserFavorites(r.Context(), chi.URLParam(r, "userID"))
	writeJSON(w, http.StatusOK, NotesResponse{Success: true, Notes: res.Notes, Count: res.Count})
}
