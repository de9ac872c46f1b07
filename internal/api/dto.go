package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/aruales/apuntes/internal/models"
)

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Preview  string `json:"preview"`
}

// Validate enforces the note creation field contract.
func (r CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Category, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.Author, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.Preview, validation.Required, validation.Length(10, 0)),
	)
}

// FavoriteToggleRequest marks or unmarks a note as favorite for a user.
type FavoriteToggleRequest struct {
	NoteID int    `json:"note_id"`
	UserID string `json:"user_id"`
}

// Validate enforces the favorite toggle field contract.
func (r FavoriteToggleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NoteID, validation.Required, validation.Min(1)),
		validation.Field(&r.UserID, validation.Required),
	)
}

// CreateCommentRequest is the request body for commenting on a note.
type CreateCommentRequest struct {
	NoteID int    `json:"note_id"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

// Validate enforces the comment creation field contract.
func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NoteID, validation.Required, validation.Min(1)),
		validation.Field(&r.Author, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.Text, validation.Required, validation.Length(1, 500)),
	)
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces the registration field contract.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
	)
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces the login field contract.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// MessageResponse is the generic success/message body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotesResponse wraps a note listing.
type NotesResponse struct {
	Success bool          `json:"success"`
	Notes   []models.Note `json:"notes"`
	Count   int           `json:"count"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    models.Profile `json:"user"`
}

// AllCommentsResponse is the dev view of the whole comment grouping. Go
// marshals the int map keys as JSON object keys (strings).
type AllCommentsResponse struct {
	Success               bool                     `json:"success"`
	Comments              map[int][]models.Comment `json:"comments"`
	TotalNotesWithComment int                      `json:"total_notes_with_comments"`
}
