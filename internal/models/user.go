package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
