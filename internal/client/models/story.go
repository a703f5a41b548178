// Package models defines client-side data models used by the storyline CLI.
package models

// Story mirrors the server's story shape. Lat and Lon are either both set
// or both nil.
type Story struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PhotoURL    string   `json:"photoUrl"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// LoginResult carries the bearer token and display name returned by a
// successful login.
type LoginResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}
