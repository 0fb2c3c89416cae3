package api

// LocationInput 地點子文件，欄位以指標標記必填與否
// swagger:model api.LocationInput
type LocationInput struct {
	Latitude  *float64 `json:"latitude" bson:"latitude,omitempty" example:"17.3932"`
	Longitude *float64 `json:"longitude" bson:"longitude,omitempty" example:"78.3191"`
	Address   *string  `json:"address" bson:"address,omitempty" example:"Kandlakoya, Hyderabad"`
}

// Complete 回報 latitude、longitude、address 是否齊備
func (l *LocationInput) Complete() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil && l.Address != nil
}

// ContactInput 聯絡子文件
// swagger:model api.ContactInput
type ContactInput struct {
	Email *string `json:"email" bson:"email,omitempty" example:"info@cmrcet.ac.in"`
	Phone *string `json:"phone" bson:"phone,omitempty" example:"+91-40-23792222"`
}

// Complete 回報 email、phone 是否齊備
func (c *ContactInput) Complete() bool {
	return c != nil && c.Email != nil && c.Phone != nil
}

// CreateCollegeRequest 定義新增學院的請求格式，十個頂層欄位皆為必填
// swagger:model api.CreateCollegeRequest
type CreateCollegeRequest struct {
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

// MissingFields 回傳所有缺漏的頂層欄位名稱，一次列出
func (r *CreateCollegeRequest) MissingFields() []string {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	if r.Website == nil {
		missing = append(missing, "website")
	}
	if r.Contact == nil {
		missing = append(missing, "contact")
	}
	if r.Facilities == nil {
		missing = append(missing, "facilities")
	}
	if r.Departments == nil {
		missing = append(missing, "departments")
	}
	if r.Courses == nil {
		missing = append(missing, "courses")
	}
	if r.City == nil {
		missing = append(missing, "city")
	}
	if r.State == nil {
		missing = append(missing, "state")
	}
	if r.Branches == nil {
		missing = append(missing, "branches")
	}
	return missing
}
