// Package authsvc - đăng ký, đăng nhập và kiểm tra token.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/global"
	"sentiment_dashboard/core/logger"
	authdto "sentiment_dashboard/internal/api/auth/dto"
	"sentiment_dashboard/internal/api/auth/models"
	"sentiment_dashboard/internal/database"
	"sentiment_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	users         database.Collection
	tokens        *TokenIssuer
	denylist      Denylist
	allowedDomain string
	now           func() time.Time
}

// NewUserService lấy collection users từ registry và cấu hình JWT từ config toàn cục.
func NewUserService(denylist Denylist) (*UserService, error) {
	col, err := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to get users collection: %w", err)
	}
	cfg := global.MongoDB_ServerConfig
	return NewUserServiceWith(col, NewTokenIssuer(cfg.JwtSecret, cfg.JwtTTL), denylist, cfg.AuthAllowedEmailDomain), nil
}

// NewUserServiceWith dùng cho test và wiring thủ công.
func NewUserServiceWith(users database.Collection, tokens *TokenIssuer, denylist Denylist, allowedDomain string) *UserService {
	if denylist == nil {
		denylist = NewCacheDenylist()
	}
	return &UserService{
		users:         users,
		tokens:        tokens,
		denylist:      denylist,
		allowedDomain: allowedDomain,
		now:           time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup tạo tài khoản mới. Email phải thuộc domain cho phép và chưa tồn tại.
func (s *UserService) Signup(ctx context.Context, input *authdto.SignupInput) (*authdto.SignupResult, error) {
	email := normalizeEmail(input.Email)
	if err := utility.ValidateEmail(email); err != nil {
		return nil, err
	}
	if !utility.HasEmailDomain(email, s.allowedDomain) {
		return nil, common.WithDetails(common.ErrEmailDomain, map[string]string{"allowed_domain": s.allowedDomain})
	}
	if err := utility.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	_, err := s.findByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrAccountExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Cannot hash password", common.StatusInternalServerError, err.Error())
	}

	nowMs := utility.UnixMilli(s.now())
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  string(hash),
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		// Hai request signup song song: unique index chặn request thứ hai.
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrAccountExists
		}
		return nil, common.ConvertMongoError(err)
	}

	logger.WithModuleAndCollection("auth", s.users.Name()).WithField("user_id", user.ID.Hex()).Info("User signed up")
	return &authdto.SignupResult{UserID: user.ID.Hex(), Email: user.Email}, nil
}

// Signin kiểm tra email/password và cấp access token.
func (s *UserService) Signin(ctx context.Context, input *authdto.SigninInput) (*authdto.TokenResult, error) {
	user, err := s.findByEmail(ctx, normalizeEmail(input.Username))
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// authenticate parse token và kiểm tra denylist.
func (s *UserService) authenticate(ctx context.Context, token string) (*models.JwtClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, common.ErrTokenRevoked
	}
	return claims, nil
}

// VerifyBearer dùng cho AuthMiddleware.
func (s *UserService) VerifyBearer(ctx context.Context, token string) (string, string, error) {
	claims, err := s.authenticate(ctx, token)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Email, nil
}

// Verify - GET /api/verify.
func (s *UserService) Verify(ctx context.Context, token string) (*authdto.VerifyResult, error) {
	claims, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &authdto.VerifyResult{Valid: true, Email: claims.Email, UserID: claims.Subject}, nil
}

// Signout thu hồi token tới khi nó hết hạn.
func (s *UserService) Signout(ctx context.Context, token string) (*authdto.SignoutResult, error) {
	claims, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return nil, err
	}
	return &authdto.SignoutResult{Revoked: true}, nil
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &user, nil
}
