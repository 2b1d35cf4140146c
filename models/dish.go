package models

import "time"

// Dish is one of the (at most two) "dish of the day" entries. Positions form a
// contiguous prefix starting at 1: a dish at position 2 never exists without one
// at position 1.
type Dish struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nom" db:"nom" gorm:"column:nom;type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Position    int       `json:"position" db:"position" gorm:"not null;uniqueIndex:idx_dish_position"`
	FileURL     *string   `json:"fileUrl" db:"file_url" gorm:"type:text"`
	FileName    *string   `json:"fileName" db:"file_name" gorm:"type:text"`
	FileType    *string   `json:"fileType" db:"file_type" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	Tags        []DishTag `json:"tags,omitempty" gorm:"foreignKey:DishID;references:ID;constraint:OnDelete:CASCADE"`
}

// HasAsset reports whether the dish references a stored image.
func (d *Dish) HasAsset() bool {
	return d.FileURL != nil && *d.FileURL != ""
}

// ClearAsset drops the asset reference fields. It does not touch the remote store.
func (d *Dish) ClearAsset() {
	d.FileURL = nil
	d.FileName = nil
	d.FileType = nil
}
