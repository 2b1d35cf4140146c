package models

import "time"

// WeeklyMenu is the current menu PDF. At most one row exists at a time; each
// upload removes every prior row before inserting the replacement.
type WeeklyMenu struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FileURL   string    `json:"fileUrl" db:"file_url" gorm:"type:text;not null"`
	FileName  string    `json:"fileName" db:"file_name" gorm:"type:text;not null"`
	FileType  string    `json:"fileType" db:"file_type" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
