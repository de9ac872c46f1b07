// Package store holds the in-memory state of the platform: users, notes
// grouped by category, comments grouped by note, and per-user favorites.
//
// All four collections live behind a single mutex. Compound operations
// (existence check plus mutation) are store methods so that concurrent
// requests cannot compute colliding ids or lose a toggle.
package store

import (
	"strings"
	"sync"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/models"
)

// Store is the in-memory entity store. The zero value is not usable;
// construct with New.
type Store struct {
	mu         sync.Mutex
	users      []models.User
	categories []string // category insertion order
	notes      map[string][]models.Note
	comments   map[int][]models.Comment
	favorites  map[string][]int
}

// New creates a store populated from seed. A nil seed yields an empty store.
func New(seed *Seed) *Store {
	s := &Store{
		notes:     make(map[string][]models.Note),
		comments:  make(map[int][]models.Comment),
		favorites: make(map[string][]int),
	}
	if seed != nil {
		s.apply(seed)
	}
	return s
}

// apply installs seed data. Caller must hold mu or have exclusive access.
func (s *Store) apply(seed *Seed) {
	s.users = nil
	s.categories = nil
	s.notes = make(map[string][]models.Note)
	s.comments = make(map[int][]models.Comment)
	s.favorites = make(map[string][]int)

	for _, c := range seed.Categories {
		s.categories = append(s.categories, c.Name)
		s.notes[c.Name] = append([]models.Note(nil), c.Notes...)
	}
	for _, c := range seed.Comments {
		s.comments[c.NoteID] = append([]models.Comment(nil), c.Comments...)
	}
}

// Replace swaps the store contents for the given seed. Used by the seed-file
// watcher in dev mode; favorites and registered users are reset too.
func (s *Store) Replace(seed *Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(seed)
}

// NextNoteID returns 1 + the highest note id across all categories.
// Recomputed on every call so pre-seeded ids are always respected.
func (s *Store) NextNoteID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextNoteIDLocked()
}

func (s *Store) nextNoteIDLocked() int {
	max := 0
	for _, list := range s.notes {
		for _, n := range list {
			if n.ID > max {
				max = n.ID
			}
		}
	}
	return max + 1
}

// NextCommentID returns 1 + the highest comment id across all notes.
func (s *Store) NextCommentID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextCommentIDLocked()
}

func (s *Store) nextCommentIDLocked() int {
	max := 0
	for _, list := range s.comments {
		for _, c := range list {
			if c.ID > max {
				max = c.ID
			}
		}
	}
	return max + 1
}

// AllNotes returns every note, flattened in category-insertion order and
// note-insertion order within each category.
func (s *Store) AllNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allNotesLocked()
}

func (s *Store) allNotesLocked() []models.Note {
	var all []models.Note
	for _, name := range s.categories {
		all = append(all, s.notes[name]...)
	}
	return all
}

// FindNoteByID scans the flattened note sequence for the given id.
func (s *Store) FindNoteByID(id int) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findNoteLocked(id)
}

func (s *Store) findNoteLocked(id int) (models.Note, bool) {
	for _, name := range s.categories {
		for _, n := range s.notes[name] {
			if n.ID == id {
				return n, true
			}
		}
	}
	return models.Note{}, false
}

// FindCategory matches name against the stored category keys
// case-insensitively and returns the canonical stored key.
func (s *Store) FindCategory(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.categories {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}

// Categories enumerates the current categories in insertion order. The id is
// the 1-based position and changes when categories are added.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := make([]models.Category, 0, len(s.categories))
	for i, name := range s.categories {
		cats = append(cats, models.Category{
			ID:    i + 1,
			Name:  name,
			Count: len(s.notes[name]),
		})
	}
	return cats
}

// CategoryNotes returns the notes of the category matching name
// case-insensitively, or false if no category matches.
func (s *Store) CategoryNotes(name string) ([]models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.categories {
		if strings.EqualFold(key, name) {
			return append([]models.Note(nil), s.notes[key]...), true
		}
	}
	return nil, false
}

// CreateNote assigns the next free id and appends the note to category.
// The category key is matched exactly here: a new casing variant creates a
// new group. The read path is case-insensitive; this asymmetry is inherited
// from the reference behavior and kept on purpose.
func (s *Store) CreateNote(title, category, author, preview string) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:        s.nextNoteIDLocked(),
		Title:     title,
		Author:    author,
		Rating:    5.0,
		Downloads: 0,
		Preview:   preview,
	}
	if _, ok := s.notes[category]; !ok {
		s.categories = append(s.categories, category)
		s.notes[category] = nil
	}
	s.notes[category] = append(s.notes[category], note)
	return note
}

// ToggleFavorite flips membership of noteID in the user's favorites list.
// It reports whether the note was added (true) or removed (false), together
// with the note itself for message rendering.
func (s *Store) ToggleFavorite(noteID int, userID string) (models.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.findNoteLocked(noteID)
	if !ok {
		return models.Note{}, false, apperr.ErrNotFound
	}

	favs := s.favorites[userID]
	for i, id := range favs {
		if id == noteID {
			s.favorites[userID] = append(favs[:i], favs[i+1:]...)
			return note, false, nil
		}
	}
	s.favorites[userID] = append(favs, noteID)
	return note, true, nil
}

// Favorites resolves the user's favorite ids against the flattened note
// sequence, preserving that sequence's order rather than toggle order.
// A user who never toggled anything gets an empty result, not an error.
func (s *Store) Favorites(userID string) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.favorites[userID]
	if len(ids) == 0 {
		return nil
	}
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Note
	for _, n := range s.allNotesLocked() {
		if wanted[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// CommentsForNote returns the comments of noteID in insertion order.
// The note must exist; a note without comments yields an empty list.
func (s *Store) CommentsForNote(noteID int) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findNoteLocked(noteID); !ok {
		return nil, apperr.ErrNotFound
	}
	return append([]models.Comment(nil), s.comments[noteID]...), nil
}

// CreateComment assigns the next free comment id and appends to the note's
// list, creating it if absent. Returns the created comment and the owning
// note (for message rendering).
func (s *Store) CreateComment(noteID int, author, date, text string) (models.Comment, models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.findNoteLocked(noteID)
	if !ok {
		return models.Comment{}, models.Note{}, apperr.ErrNotFound
	}
	comment := models.Comment{
		ID:     s.nextCommentIDLocked(),
		Author: author,
		Date:   date,
		Text:   text,
	}
	s.comments[noteID] = append(s.comments[noteID], comment)
	return comment, note, nil
}

// DeleteComment removes the comment with the given id, wherever it lives,
// and returns it. Comment ids are unique across the whole store.
func (s *Store) DeleteComment(commentID int) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for noteID, list := range s.comments {
		for i, c := range list {
			if c.ID == commentID {
				s.comments[noteID] = append(list[:i], list[i+1:]...)
				return c, nil
			}
		}
	}
	return models.Comment{}, apperr.ErrNotFound
}

// AllComments returns a copy of the full comment grouping and the number of
// notes that have a comment list (including seeded empty ones).
func (s *Store) AllComments() (map[int][]models.Comment, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int][]models.Comment, len(s.comments))
	for id, list := range s.comments {
		out[id] = append([]models.Comment(nil), list...)
	}
	return out, len(out)
}

// AddUser appends user if no existing user shares its email (exact match).
func (s *Store) AddUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return apperr.ErrDuplicateEmail
		}
	}
	s.users = append(s.users, user)
	return nil
}

// FindUserByEmail looks a user up by exact email match.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns all registered users in insertion order.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}
