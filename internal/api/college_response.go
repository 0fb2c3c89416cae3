package api

import "clg-navigator/internal/model"

// CollegeResponse 以不透明字串呈現識別碼的學院文件
// swagger:model api.CollegeResponse
type CollegeResponse struct {
	ID string `json:"_id" example:"662a1f9e8b3f4c1d2e5a6b7c"`
	model.College
}

func NewCollegeResponse(c *model.College) CollegeResponse {
	return CollegeResponse{ID: c.ID.Hex(), College: *c}
}
