package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `categories:
  - name: Historia
    notes:
      - id: 1
        title: Edad Media
        author: Marta Díaz
        rating: 4.5
        downloads: 10
        preview: Feudalismo y sociedad estamental...
  - name: Física
    notes:
      - id: 2
        title: Cinemática
        author: Raúl Soto
        rating: 5.0
        downloads: 3
        preview: Movimiento rectilíneo uniforme...
comments:
  - note_id: 1
    comments:
      - id: 1
        author: Eva
        date: "2024-09-01"
        text: Gracias!
`

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed.Categories, 2)
	assert.Equal(t, "Historia", seed.Categories[0].Name)
	assert.Equal(t, "Edad Media", seed.Categories[0].Notes[0].Title)
	assert.Equal(t, 4.5, seed.Categories[0].Notes[0].Rating)
	require.Len(t, seed.Comments, 1)
	assert.Equal(t, "Eva", seed.Comments[0].Comments[0].Author)

	s := New(seed)
	assert.Equal(t, 3, s.NextNoteID())
	assert.Equal(t, 2, s.NextCommentID())
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeedFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [oops"), 0o644))

	_, err := LoadSeedFile(path)
	assert.Error(t, err)
}

func TestDefaultSeed_Integrity(t *testing.T) {
	seed := DefaultSeed()

	seenNotes := map[int]bool{}
	for _, c := range seed.Categories {
		for _, n := range c.Notes {
			assert.False(t, seenNotes[n.ID], "duplicate note id %d", n.ID)
			seenNotes[n.ID] = true
			assert.GreaterOrEqual(t, n.Rating, 0.0)
			assert.LessOrEqual(t, n.Rating, 5.0)
			assert.GreaterOrEqual(t, n.Downloads, 0)
		}
	}

	seenComments := map[int]bool{}
	for _, g := range seed.Comments {
		assert.True(t, seenNotes[g.NoteID], "comment group for unknown note %d", g.NoteID)
		for _, c := range g.Comments {
			assert.False(t, seenComments[c.ID], "duplicate comment id %d", c.ID)
			seenComments[c.ID] = true
		}
	}
}
