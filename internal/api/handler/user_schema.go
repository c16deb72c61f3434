package handler

type createUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Role      string `json:"role"      validate:"omitempty,oneof=user admin"`
}

// updateUserRequest is a field-level patch: absent fields leave the stored
// value untouched. A new password is re-hashed by the service.
type updateUserRequest struct {
	Email     *string `json:"email"     validate:"omitempty,email"`
	Password  *string `json:"password"  validate:"omitempty,min=6"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"      validate:"omitempty,oneof=user admin"`
	Active    *bool   `json:"isActive"`
}
