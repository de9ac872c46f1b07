// Package commentservice implements per-note comment listing, creation and
// deletion.
package commentservice

import (
	"context"
	"fmt"
	"time"

	"github.com/aruales/apuntes/internal/models"
	"github.com/aruales/apuntes/internal/store"
)

// EventPublisher receives store-mutation events for broadcasting.
type EventPublisher interface {
	PublishEntityEvent(event string, data map[string]string)
}

// Service manages comments on notes.
type Service struct {
	store  *store.Store
	events EventPublisher
	now    func() time.Time
}

// NewService creates a comment service. events may be nil.
func NewService(s *store.Store, events EventPublisher) *Service {
	return &Service{store: s, events: events, now: time.Now}
}

// CommentsForNote returns the note's comments in insertion order. The note
// must exist; a note without comments yields an empty list, not an error.
func (s *Service) CommentsForNote(_ context.Context, noteID int) ([]models.Comment, error) {
	comments, err := s.store.CommentsForNote(noteID)
	if err != nil {
		return nil, fmt.Errorf("note %d: %w", noteID, err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// CreateComment appends a comment to an existing note, dated with the
// current calendar date.
func (s *Service) CreateComment(_ context.Context, noteID int, author, text string) (string, error) {
	date := s.now().Format("2006-01-02")
	comment, note, err := s.store.CreateComment(noteID, author, date, text)
	if err != nil {
		return "", fmt.Errorf("note %d: %w", noteID, err)
	}
	if s.events != nil {
		s.events.PublishEntityEvent("comment.created", map[string]string{
			"id":      fmt.Sprint(comment.ID),
			"note_id": fmt.Sprint(noteID),
		})
	}
	return fmt.Sprintf("Comment added to note %q.", note.Title), nil
}

// DeleteComment removes a comment by id, scanning all notes' lists.
func (s *Service) DeleteComment(_ context.Context, commentID int) (string, error) {
	comment, err := s.store.DeleteComment(commentID)
	if err != nil {
		return "", fmt.Errorf("comment %d: %w", commentID, err)
	}
	if s.events != nil {
		s.events.PublishEntityEvent("comment.deleted", map[string]string{
			"id": fmt.Sprint(commentID),
		})
	}
	return fmt.Sprintf("Comment by %q deleted.", comment.Author), nil
}

// AllComments returns the full note-id to comments grouping and the number
// of notes that have a comment list. Dev/debug surface.
func (s *Service) AllComments(_ context.Context) (map[int][]models.Comment, int) {
	return s.store.AllComments()
}
