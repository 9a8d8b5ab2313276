package models

import "time"

type User struct {
	UserID       int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (User) TableName() string { return "users" }
