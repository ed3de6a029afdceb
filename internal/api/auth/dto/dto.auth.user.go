// Package authdto chứa input/output của các route auth.
package authdto

// SignupInput - POST /api/signup (JSON).
type SignupInput struct {
	Email    string `json:"email" validate:"required,email,email_domain"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninInput - POST /api/signin (OAuth2 password form).
type SigninInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type SignupResult struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// TokenResult - ExpiresIn tính bằng giây.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type VerifyResult struct {
	Valid  bool   `json:"valid"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

type SignoutResult struct {
	Revoked bool `json:"revoked"`
}
