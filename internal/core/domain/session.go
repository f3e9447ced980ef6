package domain

// SessionClaim is the ephemeral identity projection embedded in a session
// token at login time. It is trusted until the token expires; a role change
// in the credential store only takes effect on reissue.
type SessionClaim struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
}

// NewSessionClaim derives a claim from a user record with the role already
// normalized, so consumers never need to handle the absent-role case.
func NewSessionClaim(u *User) *SessionClaim {
	return &SessionClaim{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   NormalizeRole(u.Role),
	}
}
