package api

// CreateEventRequest 定義新增活動的請求格式，date 須為 YYYY-MM-DD
// swagger:model api.CreateEventRequest
type CreateEventRequest struct {
	CollegeName *string `json:"college_name" example:"CMR College of Engineering"`
	EventName   *string `json:"event_name" example:"TechFest 2025"`
	Description *string `json:"description" example:"Annual technical festival"`
	Date        *string `json:"date" example:"2025-09-15"`
	Location    *string `json:"location" example:"Main Auditorium"`
}

// MissingFields 回傳所有缺漏的欄位名稱
func (r *CreateEventRequest) MissingFields() []string {
	var missing []string
	if r.CollegeName == nil {
		missing = append(missing, "college_name")
	}
	if r.EventName == nil {
		missing = append(missing, "event_name")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.Date == nil {
		missing = append(missing, "date")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	return missing
}
