package authsvc

import (
	"errors"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/internal/api/auth/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer ký và kiểm tra access token HS256.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer tạo TokenIssuer; ttl <= 0 dùng 24h.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL trả về thời gian sống của token.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue tạo token cho user với jti ngẫu nhiên.
func (t *TokenIssuer) Issue(userID, email string) (string, *models.JwtClaims, error) {
	now := t.now()
	claims := &models.JwtClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeInternalServer, "Cannot sign token", common.StatusInternalServerError, err.Error())
	}
	return signed, claims, nil
}

// Parse kiểm tra chữ ký, thuật toán và hạn của token.
func (t *TokenIssuer) Parse(token string) (*models.JwtClaims, error) {
	claims := &models.JwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	default:
		return nil, common.ErrTokenInvalid
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
