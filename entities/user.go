package entities

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"user_id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	Username     string    `gorm:"size:100" json:"username"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
