// Package noteservice implements category listing, note queries, note
// creation, and the favorites toggle on top of the entity store.
package noteservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/models"
	"github.com/aruales/apuntes/internal/store"
)

// EventPublisher receives store-mutation events for broadcasting.
type EventPublisher interface {
	PublishEntityEvent(event string, data map[string]string)
}

// NotesResult wraps a note listing with its count.
type NotesResult struct {
	Notes []models.Note
	Count int
}

// Service answers note and category queries and performs note mutations.
type Service struct {
	store  *store.Store
	events EventPublisher
}

// NewService creates a note service. events may be nil.
func NewService(s *store.Store, events EventPublisher) *Service {
	return &Service{store: s, events: events}
}

// ListCategories enumerates the current categories with live note counts.
func (s *Service) ListCategories(_ context.Context) []models.Category {
	return s.store.Categories()
}

// NotesByCategory returns the notes of a category, matched case-insensitively.
func (s *Service) NotesByCategory(_ context.Context, name string) (NotesResult, error) {
	notes, ok := s.store.CategoryNotes(name)
	if !ok {
		return NotesResult{}, fmt.Errorf("category %q: %w", name, apperr.ErrNotFound)
	}
	return result(notes), nil
}

// AllNotes returns every note across all categories in flattened order.
func (s *Service) AllNotes(_ context.Context) NotesResult {
	return result(s.store.AllNotes())
}

// NoteByID returns a single note.
func (s *Service) NoteByID(_ context.Context, id int) (models.Note, error) {
	note, ok := s.store.FindNoteByID(id)
	if !ok {
		return models.Note{}, fmt.Errorf("note %d: %w", id, apperr.ErrNotFound)
	}
	return note, nil
}

// CreateNote adds a note with a fresh id, rating 5.0 and zero downloads.
// The category is created if the exact key does not exist yet.
func (s *Service) CreateNote(_ context.Context, title, category, author, preview string) (string, error) {
	note := s.store.CreateNote(title, category, author, preview)
	if s.events != nil {
		s.events.PublishEntityEvent("note.created", map[string]string{
			"id":       fmt.Sprint(note.ID),
			"title":    note.Title,
			"category": category,
		})
	}
	return fmt.Sprintf("Note %q created in category %q.", title, category), nil
}

// SearchNotes filters the flattened note sequence by a case-insensitive
// substring match against the title. An empty result is valid.
func (s *Service) SearchNotes(_ context.Context, query string) NotesResult {
	q := strings.ToLower(query)
	var matched []models.Note
	for _, n := range s.store.AllNotes() {
		if strings.Contains(strings.ToLower(n.Title), q) {
			matched = append(matched, n)
		}
	}
	return result(matched)
}

// ToggleFavorite flips the note's membership in the user's favorites and
// reports what happened.
func (s *Service) ToggleFavorite(_ context.Context, noteID int, userID string) (string, error) {
	note, added, err := s.store.ToggleFavorite(noteID, userID)
	if err != nil {
		return "", fmt.Errorf("note %d: %w", noteID, err)
	}
	event, action := "favorite.removed", "removed from"
	if added {
		event, action = "favorite.added", "added to"
	}
	if s.events != nil {
		s.events.PublishEntityEvent(event, map[string]string{
			"note_id": fmt.Sprint(noteID),
			"user_id": userID,
		})
	}
	return fmt.Sprintf("Note %q %s favorites.", note.Title, action), nil
}

// UserFavorites resolves the user's favorite ids against the flattened note
// sequence. Order follows that sequence, not the order of toggling.
func (s *Service) UserFavorites(_ context.Context, userID string) NotesResult {
	return result(s.store.Favorites(userID))
}

func result(notes []models.Note) NotesResult {
	if notes == nil {
		notes = []models.Note{}
	}
	return NotesResult{Notes: notes, Count: len(notes)}
}
