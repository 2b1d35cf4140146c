package models

// DishTag is a tag label attached to a dish. Values are copied strings, not
// foreign keys into categories: deleting a Category leaves existing tags intact.
type DishTag struct {
	ID     uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	DishID uint   `json:"dish_id" db:"dish_id" gorm:"not null;index:idx_dish_tag_dish_id;uniqueIndex:idx_dish_tag_unique"`
	Value  string `json:"value" db:"value" gorm:"type:text;not null;uniqueIndex:idx_dish_tag_unique"`
}
