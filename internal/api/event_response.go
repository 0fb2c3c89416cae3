package api

import (
	"time"

	"clg-navigator/internal/model"
)

// EventResponse 活動文件，三個時間欄位皆以 ISO-8601 文字呈現
// swagger:model api.EventResponse
type EventResponse struct {
	ID          string `json:"_id" example:"662a1f9e8b3f4c1d2e5a6b7c"`
	CollegeName string `json:"college_name" example:"CMR College of Engineering"`
	EventName   string `json:"event_name" example:"TechFest 2025"`
	Description string `json:"description" example:"Annual technical festival"`
	Date        string `json:"date" example:"2025-09-15T00:00:00Z"`
	Location    string `json:"location" example:"Main Auditorium"`
	CreatedAt   string `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   string `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewEventResponse(e *model.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.Hex(),
		CollegeName: e.CollegeName,
		EventName:   e.EventName,
		Description: e.Description,
		Date:        e.Date.UTC().Format(time.RFC3339),
		Location:    e.Location,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
