package api

import (
	"time"

	"github.com/nmercier/bistro-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	dishHandler     dishHandler
	eventHandler    eventHandler
	menuHandler     menuHandler
	sideHandler     sideHandler
	categoryHandler categoryHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"nom"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// dishResponse flattens tag rows into plain labels for the wire format the
// admin and public pages consume.
type dishResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"nom"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	FileURL     *string   `json:"fileUrl"`
	FileName    *string   `json:"fileName"`
	FileType    *string   `json:"fileType"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDishResponse(dish models.Dish) dishResponse {
	tags := make([]string, 0, len(dish.Tags))
	for _, tag := range dish.Tags {
		tags = append(tags, tag.Value)
	}
	return dishResponse{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Tags:        tags,
		FileURL:     dish.FileURL,
		FileName:    dish.FileName,
		FileType:    dish.FileType,
		Position:    dish.Position,
		CreatedAt:   dish.CreatedAt,
	}
}

func toDishResponses(dishes []models.Dish) []dishResponse {
	responses := make([]dishResponse, 0, len(dishes))
	for _, dish := range dishes {
		responses = append(responses, toDishResponse(dish))
	}
	return responses
}

// menuUploadResponse mirrors the original upload reply: the new durable URL.
type menuUploadResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	URL     string `json:"url"`
}
