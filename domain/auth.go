package domain

import "errors"

var (
	MessageSuccessRedirectURL = "redirect url retrieved successfully"
	MessageSuccessLogin       = "session created successfully"
	MessageSuccessLogout      = "logged out successfully"

	MessageFailedRedirectURL = "failed to retrieve redirect url"
	MessageFailedLogin       = "failed to create session"
	MessageFailedLogout      = "failed to log out"

	ErrNoAuthorizationCode = errors.New("no authorization code provided")
	ErrSessionInvalid      = errors.New("session is invalid or expired")
)

type (
	CreateSessionRequest struct {
		Code string `json:"code" validate:"required"`
	}

	GoogleUserData struct {
		Name      *string `json:"name,omitempty"`
		GivenName *string `json:"given_name,omitempty"`
		Picture   *string `json:"picture,omitempty"`
	}

	// AuthUser is the principal resolved by the external identity service.
	AuthUser struct {
		ID             string          `json:"id"`
		Email          string          `json:"email"`
		GoogleUserData *GoogleUserData `json:"google_user_data,omitempty"`
	}
)

// DisplayName picks the friendliest name available for email greetings.
func (u *AuthUser) DisplayName() string {
	if u.GoogleUserData != nil {
		if u.GoogleUserData.GivenName != nil && *u.GoogleUserData.GivenName != "" {
			return *u.GoogleUserData.GivenName
		}
		if u.GoogleUserData.Name != nil && *u.GoogleUserData.Name != "" {
			return *u.GoogleUserData.Name
		}
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
