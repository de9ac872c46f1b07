package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aruales/apuntes/internal/models"
)

// Seed describes the initial store contents. Categories keep their listed
// order; a comment group may be empty to pre-create the note's list.
type Seed struct {
	Categories []SeedCategory     `yaml:"categories"`
	Comments   []SeedCommentGroup `yaml:"comments"`
}

// SeedCategory is one category and its notes.
type SeedCategory struct {
	Name  string        `yaml:"name"`
	Notes []models.Note `yaml:"notes"`
}

// SeedCommentGroup holds the seeded comments of one note.
type SeedCommentGroup struct {
	NoteID   int              `yaml:"note_id"`
	Comments []models.Comment `yaml:"comments"`
}

// LoadSeedFile reads a YAML seed file.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// DefaultSeed returns the built-in demo dataset used when no seed file is
// configured. Note ids are unique across categories, comment ids across
// notes; note 4 is seeded with an empty comment list.
func DefaultSeed() *Seed {
	return &Seed{
		Categories: []SeedCategory{
			{
				Name: "Algoritmos",
				Notes: []models.Note{
					{ID: 1, Title: "Apuntes de Algoritmos", Author: "Carlos Ruiz", Rating: 5.0, Downloads: 120, Preview: "Introducción a estructuras de control y funciones..."},
					{ID: 2, Title: "Ejercicios básicos", Author: "Ana López", Rating: 4.0, Downloads: 85, Preview: "Listas, bucles y diagramas de flujo..."},
				},
			},
			{
				Name: "Bases de datos",
				Notes: []models.Note{
					{ID: 3, Title: "Apuntes de SQL", Author: "Pedro Torres", Rating: 5.0, Downloads: 200, Preview: "Normalización, consultas básicas y avanzadas..."},
					{ID: 4, Title: "Diseño de BD", Author: "María González", Rating: 4.0, Downloads: 150, Preview: "Modelado relacional y ER diagrams..."},
				},
			},
			{
				Name: "Redes",
				Notes: []models.Note{
					{ID: 5, Title: "Fundamentos de redes", Author: "Luis Gómez", Rating: 5.0, Downloads: 90, Preview: "Topologías, protocolos y direccionamiento IP..."},
					{ID: 6, Title: "Configuraciones Cisco", Author: "Laura Pérez", Rating: 4.0, Downloads: 60, Preview: "Configuración básica de routers y switches..."},
					{ID: 7, Title: "Configuraciones GNS3", Author: "Laura Pérez", Rating: 3.0, Downloads: 30, Preview: "Configuración básica de gns3 y..."},
				},
			},
		},
		Comments: []SeedCommentGroup{
			{
				NoteID: 1,
				Comments: []models.Comment{
					{ID: 1, Author: "Lucía Pérez", Date: "2024-10-10", Text: "Muy buenos apuntes, me sirvieron mucho!"},
					{ID: 2, Author: "David Rojas", Date: "2024-10-12", Text: "Podrías agregar ejemplos de recursividad?"},
				},
			},
			{
				NoteID: 2,
				Comments: []models.Comment{
					{ID: 3, Author: "Laura Torres", Date: "2024-10-15", Text: "Excelente guía para estudiar antes del parcial!"},
				},
			},
			{
				NoteID: 3,
				Comments: []models.Comment{
					{ID: 4, Author: "Juan Gómez", Date: "2024-10-17", Text: "El apartado de consultas JOIN está muy claro 👏"},
				},
			},
			{
				NoteID:   4,
				Comments: []models.Comment{},
			},
		},
	}
}
