package database

import (
	"gorm.io/gorm"
)

type Database struct {
	dishRepo     *DishRepo
	eventRepo    *EventRepo
	menuRepo     *MenuRepo
	sideRepo     *SideRepo
	categoryRepo *CategoryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		dishRepo:     NewDishRepo(db),
		eventRepo:    NewEventRepo(db),
		menuRepo:     NewMenuRepo(db),
		sideRepo:     NewSideRepo(db),
		categoryRepo: NewCategoryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) DishRepo() *DishRepo {
	return d.dishRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) MenuRepo() *MenuRepo {
	return d.menuRepo
}

func (d Database) SideRepo() *SideRepo {
	return d.sideRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}
