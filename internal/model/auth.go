package model

import "time"

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata *struct {
		FullName string `json:"full_name,omitempty"`
	} `json:"user_metadata,omitempty"`
}

// DisplayName prefers the metadata full name over the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.UserMetadata != nil && u.UserMetadata.FullName != "" {
		return u.UserMetadata.FullName
	}
	return u.Email
}

type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  *string   `json:"full_name"`
	Role      string    `json:"role"` // admin, manager, member
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the token payload returned by signin, signup and refresh.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

type AuthResponse struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
}
