package dto

// UserResponse is the only shape a user is ever serialized into. The password
// hash stays out of the DTO entirely.
type UserResponse struct {
	Id    uint   `json:"id"`
	Email string `json:"email"`
}
