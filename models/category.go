package models

// Category is a selectable tag value for dishes. Dish tags copy the name, so
// deleting a category never cascades into existing dishes.
type Category struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;unique"`
}
