package dto

// UserRequest payload for registration. The JSON keys are the aliases the
// web client has always sent.
type UserRequest struct {
	Username  string `json:"login"`
	Password  string `json:"code"`
	Email     string `json:"mail"`
	FirstName string `json:"name"`
	LastName  string `json:"surname"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}
