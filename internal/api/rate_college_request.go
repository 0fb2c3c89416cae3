package api

// RateCollegeRequest 定義學院評論的請求格式，三個欄位皆為必填
// swagger:model api.RateCollegeRequest
type RateCollegeRequest struct {
	UserEmail *string  `json:"user_email" example:"alice@example.com"`
	Rating    *float64 `json:"rating" example:"4.5"`
	Message   *string  `json:"message" example:"Great campus"`
}

// MissingFields 回傳所有缺漏的欄位名稱
func (r *RateCollegeRequest) MissingFields() []string {
	var missing []string
	if r.UserEmail == nil {
		missing = append(missing, "user_email")
	}
	if r.Rating == nil {
		missing = append(missing, "rating")
	}
	if r.Message == nil {
		missing = append(missing, "message")
	}
	return missing
}
