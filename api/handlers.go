package api

import (
	"time"

	"github.com/nmercier/bistro-site-backend/database"
	"github.com/nmercier/bistro-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store services.AssetStore, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		dishHandler:     newDishHandler(services.NewDishService(database.DishRepo(), store)),
		eventHandler:    newEventHandler(services.NewEventService(database.EventRepo(), store)),
		menuHandler:     newMenuHandler(services.NewMenuService(database.MenuRepo(), store)),
		sideHandler:     newSideHandler(services.NewSideService(database.SideRepo())),
		categoryHandler: newCategoryHandler(services.NewCategoryService(database.CategoryRepo())),
		healthHandler:   newHealthHandler(startupTime),
	}
}
