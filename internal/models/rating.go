package models

import "time"

// Rating is one rated pint. UserID and PhotoPath were added after the
// first schema revision and stay nullable so AutoMigrate can attach
// them to a pre-existing ratings table.
type Rating struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int       `gorm:"column:user_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	PubName      string    `gorm:"column:pub_name"`
	City         string    `gorm:"column:city"`
	Person       string    `gorm:"column:person;not null"`
	Presentation int       `gorm:"column:presentation;not null"`
	Coldness     int       `gorm:"column:coldness;not null"`
	Head         int       `gorm:"column:head;not null"`
	Taste        int       `gorm:"column:taste;not null"`
	Notes        string    `gorm:"column:notes"`
	Score        float64   `gorm:"column:score;not null"`
	PhotoPath    string    `gorm:"column:photo_path"`
}

func (Rating) TableName() string { return "ratings" }
