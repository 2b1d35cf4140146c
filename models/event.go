package models

import "time"

// Event is an upcoming happening at the restaurant, with an optional image.
type Event struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"titre" db:"titre" gorm:"column:titre;type:text;not null"`
	Date        time.Time `json:"date" db:"date" gorm:"type:date;not null;index:idx_event_date"`
	Time        string    `json:"heure" db:"heure" gorm:"column:heure;type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	FileURL     *string   `json:"fileUrl" db:"file_url" gorm:"type:text"`
	FileName    *string   `json:"fileName" db:"file_name" gorm:"type:text"`
	FileType    *string   `json:"fileType" db:"file_type" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (e *Event) HasAsset() bool {
	return e.FileURL != nil && *e.FileURL != ""
}

func (e *Event) ClearAsset() {
	e.FileURL = nil
	e.FileName = nil
	e.FileType = nil
}
