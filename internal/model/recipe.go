// Package model defines the data structures shared by the storage and
// HTTP layers.
package model

import "time"

// Recipe belongs to exactly one user. It is created whole and never
// edited; the only mutation after creation is deletion by its owner.
// Tools, Ingredients and Steps keep the order they were submitted in.
type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PrepTime    string    `json:"prep_time"`
	Tools       []string  `json:"tools"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
}
