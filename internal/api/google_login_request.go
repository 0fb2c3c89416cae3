package api

// swagger:model api.GoogleLoginRequest
type GoogleLoginRequest struct {
	Credential string `json:"credential" validate:"required" example:"eyJhbGciOiJSUzI1NiIs..."`
}
