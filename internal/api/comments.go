package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// CommentsByNote handles GET /comments/note/{note_id}.
func (h *Handler) CommentsByNote(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathInt(r, "noteID")
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("note id must be an integer"))
		return
	}
	comments, err := h.comments.CommentsForNote(r.Context(), noteID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("note with id "+strconv.Itoa(noteID)+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// CreateComment handles POST /comments/create.
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	msg, err := h.comments.CreateComment(r.Context(), req.NoteID, req.Author, req.Text)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("note with id "+strconv.Itoa(req.NoteID)+" not found"))
		return
	}
	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: msg})
}

// AllComments handles GET /comments/all (dev endpoint).
func (h *Handler) AllComments(w http.ResponseWriter, r *http.Request) {
	grouped, total := h.comments.AllComments(r.Context())
	writeJSON(w, http.StatusOK, AllCommentsResponse{
		Success:               true,
		Comments:              grouped,
		TotalNotesWithComment: total,
	})
}

// DeleteComment handles DELETE /comments/{id}.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(r, "id")
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("comment id must be an integer"))
		return
	}
	msg, err := h.comments.DeleteComment(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("comment with id "+strconv.Itoa(id)+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: msg})
}
