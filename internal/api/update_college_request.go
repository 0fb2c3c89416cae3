package api

import "go.mongodb.org/mongo-driver/bson"

// UpdateCollegeRequest 定義部分更新學院的請求格式，僅合併有提供的欄位
// swagger:model api.UpdateCollegeRequest
type UpdateCollegeRequest struct {
	Name        *string        `json:"name"`
	Location    *LocationInput `json:"location"`
	Website     *string        `json:"website"`
	Contact     *ContactInput  `json:"contact"`
	Facilities  []string       `json:"facilities"`
	Departments []string       `json:"departments"`
	Courses     []string       `json:"courses"`
	City        *string        `json:"city"`
	State       *string        `json:"state"`
	Branches    []string       `json:"branches"`
}

// SetFields 組出 $set 文件，未提供的欄位不動
func (r *UpdateCollegeRequest) SetFields() bson.M {
	fields := bson.M{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Location != nil {
		fields["location"] = r.Location
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.Contact != nil {
		fields["contact"] = r.Contact
	}
	if r.Facilities != nil {
		fields["facilities"] = r.Facilities
	}
	if r.Departments != nil {
		fields["departments"] = r.Departments
	}
	if r.Courses != nil {
		fields["courses"] = r.Courses
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.State != nil {
		fields["state"] = *r.State
	}
	if r.Branches != nil {
		fields["branches"] = r.Branches
	}
	return fields
}
