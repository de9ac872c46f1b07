// Package models defines the domain types for the notes platform.
package models

// Note represents a shared set of course notes inside a category.
type Note struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Downloads int     `json:"downloads"`
	Preview   string  `json:"preview"`
}

// Comment is a user comment attached to a note.
type Comment struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Date   string `json:"date"` // calendar date, YYYY-MM-DD
	Text   string `json:"text"`
}

// User is a registered account. The password is stored verbatim; this
// platform simulates persistence and does not attempt real credential
// security.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Profile is the password-stripped projection of a User returned by the API.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile returns the public projection of u.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Category describes a note grouping. It is derived from the store's
// category keys on every listing; the ID is the 1-based enumeration
// position, not a stored field.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
