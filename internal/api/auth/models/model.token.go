package models

import "github.com/golang-jwt/jwt/v5"

// JwtClaims chứa data được mã hóa trong access token.
// Subject là user id, ID (jti) dùng để thu hồi token.
type JwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
