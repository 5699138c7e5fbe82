package model

import "time"

// User is a registered account. The password hash is never serialized;
// responses carry the remaining fields plus the owned recipes.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Recipes      []Recipe  `json:"recipes"`
}
