package domain

// Account maps a caller-supplied opaque identifier to a display name.
// Created implicitly on first login, never mutated afterwards.
type Account struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}
