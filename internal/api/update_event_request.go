package api

import "go.mongodb.org/mongo-driver/bson"

// UpdateEventRequest 定義部分更新活動的請求格式，date 須為 YYYY-MM-DDTHH:MM:SSZ
// swagger:model api.UpdateEventRequest
type UpdateEventRequest struct {
	CollegeName *string `json:"college_name"`
	EventName   *string `json:"event_name"`
	Description *string `json:"description"`
	Date        *string `json:"date" example:"2025-09-15T18:30:00Z"`
	Location    *string `json:"location"`
}

// SetFields 組出 $set 文件，date 由 handler 解析後另行放入
func (r *UpdateEventRequest) SetFields() bson.M {
	fields := bson.M{}
	if r.CollegeName != nil {
		fields["college_name"] = *r.CollegeName
	}
	if r.EventName != nil {
		fields["event_name"] = *r.EventName
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	return fields
}
