package dto

// CredentialsRequest payload for login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// JwtResponse carries the minted token back to the caller.
type JwtResponse struct {
	Token string `json:"token"`
}

// PrincipalResponse describes the identity established for the request.
type PrincipalResponse struct {
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}
