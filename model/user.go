package model

type User struct {
	Id        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	RoleId    int    `json:"roleId"`
	City      string `json:"city,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterData struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName,omitempty" validate:"omitempty,max=60"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,max=60"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// FieldError is one entry of the backend's error envelope.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
