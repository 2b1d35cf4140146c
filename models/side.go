package models

// Side categories shown on the public page. The admin form only offers these.
const (
	SideCategorySalades = "salades"
	SideCategorySoupes  = "soupes"
	SideCategoryBuns    = "buns"
	SideCategoryCroques = "croques"
)

var sideCategories = map[string]bool{
	SideCategorySalades: true,
	SideCategorySoupes:  true,
	SideCategoryBuns:    true,
	SideCategoryCroques: true,
}

// ValidSideCategory reports whether category is one of the recognized values.
func ValidSideCategory(category string) bool {
	return sideCategories[category]
}

// Side is a side dish grouped under a fixed category.
type Side struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Category    string `json:"category" db:"category" gorm:"type:text;not null;index:idx_side_category"`
}
