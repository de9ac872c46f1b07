package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/models"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	return New(DefaultSeed())
}

func TestNextNoteID(t *testing.T) {
	s := seeded(t)

	assert.Equal(t, 8, s.NextNoteID())
	// Idempotent without intervening inserts.
	assert.Equal(t, 8, s.NextNoteID())

	s.CreateNote("Intro to Sets", "Algoritmos", "X", "0123456789")
	assert.Equal(t, 9, s.NextNoteID())
}

func TestNextNoteID_Empty(t *testing.T) {
	s := New(nil)
	assert.Equal(t, 1, s.NextNoteID())
	assert.Equal(t, 1, s.NextCommentID())
}

func TestNextCommentID(t *testing.T) {
	s := seeded(t)

	assert.Equal(t, 5, s.NextCommentID())

	_, _, err := s.CreateComment(1, "A", "2024-11-01", "Hi")
	require.NoError(t, err)
	assert.Equal(t, 6, s.NextCommentID())
}

func TestAllNotes_FlattenedOrder(t *testing.T) {
	s := seeded(t)

	all := s.AllNotes()
	require.Len(t, all, 7)
	for i, n := range all {
		// Seed ids happen to follow category then note insertion order.
		assert.Equal(t, i+1, n.ID)
	}
}

func TestFindNoteByID(t *testing.T) {
	s := seeded(t)

	note, ok := s.FindNoteByID(3)
	require.True(t, ok)
	assert.Equal(t, "Apuntes de SQL", note.Title)

	_, ok = s.FindNoteByID(99999)
	assert.False(t, ok)
}

func TestFindCategory_CaseInsensitive(t *testing.T) {
	s := seeded(t)

	for _, name := range []string{"algoritmos", "Algoritmos", "ALGORITMOS"} {
		key, ok := s.FindCategory(name)
		require.True(t, ok, "lookup %q", name)
		assert.Equal(t, "Algoritmos", key)
	}

	_, ok := s.FindCategory("Historia")
	assert.False(t, ok)
}

func TestCategories_PositionalIDs(t *testing.T) {
	s := seeded(t)

	cats := s.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, models.Category{ID: 1, Name: "Algoritmos", Count: 2}, cats[0])
	assert.Equal(t, models.Category{ID: 2, Name: "Bases de datos", Count: 2}, cats[1])
	assert.Equal(t, models.Category{ID: 3, Name: "Redes", Count: 3}, cats[2])
}

func TestCreateNote_Defaults(t *testing.T) {
	s := seeded(t)

	created := s.CreateNote("Intro to Sets", "Algoritmos", "X", "0123456789")
	assert.Equal(t, 8, created.ID)

	note, ok := s.FindNoteByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Intro to Sets", note.Title)
	assert.Equal(t, "X", note.Author)
	assert.Equal(t, 5.0, note.Rating)
	assert.Equal(t, 0, note.Downloads)
	assert.Equal(t, "0123456789", note.Preview)
}

// Note creation matches the category key exactly, so a different casing
// creates a second group even though the read path is case-insensitive.
func TestCreateNote_ExactCategoryMatch(t *testing.T) {
	s := seeded(t)

	s.CreateNote("Grafos", "algoritmos", "Y", "0123456789")

	cats := s.Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, "algoritmos", cats[3].Name)
	assert.Equal(t, 1, cats[3].Count)

	// The read path resolves to the first case-insensitive match.
	key, ok := s.FindCategory("ALGORITMOS")
	require.True(t, ok)
	assert.Equal(t, "Algoritmos", key)
}

func TestToggleFavorite_Involution(t *testing.T) {
	s := seeded(t)

	note, added, err := s.ToggleFavorite(1, "u1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "Apuntes de Algoritmos", note.Title)
	require.Len(t, s.Favorites("u1"), 1)

	_, added, err = s.ToggleFavorite(1, "u1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, s.Favorites("u1"))
}

func TestToggleFavorite_UnknownNote(t *testing.T) {
	s := seeded(t)

	_, _, err := s.ToggleFavorite(99999, "u1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFavorites_AllNotesOrder(t *testing.T) {
	s := seeded(t)

	// Toggle out of order; the listing follows the flattened note order.
	_, _, err := s.ToggleFavorite(5, "u1")
	require.NoError(t, err)
	_, _, err = s.ToggleFavorite(1, "u1")
	require.NoError(t, err)

	favs := s.Favorites("u1")
	require.Len(t, favs, 2)
	assert.Equal(t, 1, favs[0].ID)
	assert.Equal(t, 5, favs[1].ID)
}

func TestCommentsForNote(t *testing.T) {
	s := seeded(t)

	comments, err := s.CommentsForNote(1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Lucía Pérez", comments[0].Author)

	// Note 5 exists but has no comment list yet.
	comments, err = s.CommentsForNote(5)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = s.CommentsForNote(99999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateComment_AppendsLast(t *testing.T) {
	s := seeded(t)

	comment, note, err := s.CreateComment(1, "A", "2024-11-01", "Hi")
	require.NoError(t, err)
	assert.Equal(t, 5, comment.ID)
	assert.Equal(t, "Apuntes de Algoritmos", note.Title)

	comments, err := s.CommentsForNote(1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, comment, comments[2])
	assert.Equal(t, 1, comments[0].ID)
	assert.Equal(t, 2, comments[1].ID)
}

func TestDeleteComment(t *testing.T) {
	s := seeded(t)

	deleted, err := s.DeleteComment(3)
	require.NoError(t, err)
	assert.Equal(t, "Laura Torres", deleted.Author)

	_, err = s.DeleteComment(3)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAllComments_CountsSeededEmptyGroups(t *testing.T) {
	s := seeded(t)

	grouped, total := s.AllComments()
	assert.Equal(t, 4, total)
	assert.Empty(t, grouped[4])
	assert.Contains(t, grouped, 4)
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	s := New(nil)

	u := models.User{ID: "1", Name: "Juan Pérez", Email: "juan@example.com", Password: "secret1"}
	require.NoError(t, s.AddUser(u))

	err := s.AddUser(models.User{ID: "2", Name: "Other", Email: "juan@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	// Emails are compared exactly, not case-insensitively.
	require.NoError(t, s.AddUser(models.User{ID: "3", Name: "Upper", Email: "Juan@example.com", Password: "x"}))
	assert.Len(t, s.Users(), 2)
}

func TestFindUserByEmail(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.AddUser(models.User{ID: "1", Name: "A", Email: "a@example.com", Password: "p"}))

	u, ok := s.FindUserByEmail("a@example.com")
	require.True(t, ok)
	assert.Equal(t, "A", u.Name)

	_, ok = s.FindUserByEmail("b@example.com")
	assert.False(t, ok)
}

func TestReplace_ResetsEverything(t *testing.T) {
	s := seeded(t)
	_, _, err := s.ToggleFavorite(1, "u1")
	require.NoError(t, err)

	s.Replace(&Seed{Categories: []SeedCategory{{
		Name:  "Historia",
		Notes: []models.Note{{ID: 10, Title: "Edad Media", Author: "Z", Rating: 5, Preview: "..."}},
	}}})

	assert.Len(t, s.AllNotes(), 1)
	assert.Equal(t, 11, s.NextNoteID())
	assert.Empty(t, s.Favorites("u1"))
}
