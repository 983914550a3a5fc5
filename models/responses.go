package models

// LoginResponse is the body of a successful login call. Any non-200 status
// is a login failure regardless of body.
type LoginResponse struct {
	Key string `json:"key"`
}

// UserDetail resolves a bare employee ID to the username expected by the
// login endpoint.
type UserDetail struct {
	Username string `json:"username"`
}

// APIError is the error envelope some backend endpoints return. Either
// field may be empty; Detail takes precedence when both are set.
type APIError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Text returns the most specific server-provided error text, or "".
func (e APIError) Text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}
