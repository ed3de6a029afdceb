package authsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"sentiment_dashboard/core/common"
	authdto "sentiment_dashboard/internal/api/auth/dto"
	"sentiment_dashboard/internal/api/auth/models"
	"sentiment_dashboard/internal/database/databasetest"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const domain = "@joineverestgroup.com"

var ctx = context.Background()

func newService(t *testing.T, users *databasetest.FakeCollection) (*UserService, *CacheDenylist) {
	t.Helper()
	deny := NewCacheDenylist()
	t.Cleanup(deny.Close)
	return NewUserServiceWith(users, NewTokenIssuer("secret", time.Hour), deny, domain), deny
}

func storedUser(t *testing.T, email, password string) bson.M {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return bson.M{"_id": primitive.NewObjectID(), "email": email, "password": string(hash)}
}

func TestTokenIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, claims, err := issuer.Issue("u1", "a@joineverestgroup.com")
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.Subject)
	assert.Equal(t, "a@joineverestgroup.com", parsed.Email)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestTokenDefaultTTL(t *testing.T) {
	assert.Equal(t, 24*time.Hour, NewTokenIssuer("s", 0).TTL())
}

func TestTokenParseErrors(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, _, err := issuer.Issue("u1", "a@x.com")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		late := NewTokenIssuer("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, common.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenIssuer("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not.a.token")
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := &models.JwtClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u1", ID: "j1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Parse(unsigned)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := &models.JwtClaims{RegisteredClaims: jwt.RegisteredClaims{
			ID: "j1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = issuer.Parse(signed)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})
}

func TestCacheDenylist(t *testing.T) {
	deny := NewCacheDenylist()
	defer deny.Close()

	require.NoError(t, deny.Revoke(ctx, "j1", time.Minute))
	require.NoError(t, deny.Revoke(ctx, "j2", 0))

	revoked, err := deny.IsRevoked(ctx, "j1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = deny.IsRevoked(ctx, "j2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSignup(t *testing.T) {
	t.Run("domain rejected", func(t *testing.T) {
		users := &databasetest.FakeCollection{}
		svc, _ := newService(t, users)
		_, err := svc.Signup(ctx, &authdto.SignupInput{Email: "a@gmail.com", Password: "password1"})
		assert.ErrorIs(t, err, common.ErrEmailDomain)
		assert.Empty(t, users.Calls())
	})

	t.Run("weak password", func(t *testing.T) {
		svc, _ := newService(t, &databasetest.FakeCollection{})
		_, err := svc.Signup(ctx, &authdto.SignupInput{Email: "a" + domain, Password: "short"})
		assert.ErrorIs(t, err, common.ErrWeakPassword)
	})

	t.Run("existing account", func(t *testing.T) {
		users := &databasetest.FakeCollection{
			FindOneFunc: func(interface{}) (interface{}, error) {
				return storedUser(t, "a"+domain, "password1"), nil
			},
		}
		svc, _ := newService(t, users)
		_, err := svc.Signup(ctx, &authdto.SignupInput{Email: "A" + domain, Password: "password1"})
		assert.ErrorIs(t, err, common.ErrAccountExists)
	})

	t.Run("duplicate key on insert", func(t *testing.T) {
		users := &databasetest.FakeCollection{
			InsertOneFunc: func(interface{}) (interface{}, error) {
				return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000"}}}
			},
		}
		svc, _ := newService(t, users)
		_, err := svc.Signup(ctx, &authdto.SignupInput{Email: "a" + domain, Password: "password1"})
		assert.ErrorIs(t, err, common.ErrAccountExists)
	})

	t.Run("created", func(t *testing.T) {
		var inserted models.User
		users := &databasetest.FakeCollection{
			InsertOneFunc: func(doc interface{}) (interface{}, error) {
				inserted = doc.(models.User)
				return inserted.ID, nil
			},
		}
		svc, _ := newService(t, users)
		svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

		res, err := svc.Signup(ctx, &authdto.SignupInput{Email: " Bob" + domain + " ", Password: "password1"})
		require.NoError(t, err)
		assert.Equal(t, "bob"+domain, res.Email)
		assert.Equal(t, inserted.ID.Hex(), res.UserID)
		assert.Equal(t, int64(1700000000000), inserted.CreatedAt)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("password1")))

		filter := users.Calls()[0].Arg.(bson.M)
		assert.Equal(t, "bob"+domain, filter["email"])
	})

	t.Run("store failure", func(t *testing.T) {
		users := &databasetest.FakeCollection{
			FindOneFunc: func(interface{}) (interface{}, error) { return nil, errors.New("connection refused") },
		}
		svc, _ := newService(t, users)
		_, err := svc.Signup(ctx, &authdto.SignupInput{Email: "a" + domain, Password: "password1"})
		var appErr *common.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.StatusCode)
	})
}

func TestSignin(t *testing.T) {
	users := &databasetest.FakeCollection{
		FindOneFunc: func(filter interface{}) (interface{}, error) {
			if filter.(bson.M)["email"] == "a"+domain {
				return storedUser(t, "a"+domain, "password1"), nil
			}
			return nil, nil
		},
	}
	svc, _ := newService(t, users)

	res, err := svc.Signin(ctx, &authdto.SigninInput{Username: "A" + domain, Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.NotEmpty(t, res.AccessToken)

	_, err = svc.Signin(ctx, &authdto.SigninInput{Username: "a" + domain, Password: "wrong-pass"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Signin(ctx, &authdto.SigninInput{Username: "nobody" + domain, Password: "password1"})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestVerifyAndSignout(t *testing.T) {
	svc, deny := newService(t, &databasetest.FakeCollection{})
	token, claims, err := svc.tokens.Issue("u1", "a"+domain)
	require.NoError(t, err)

	res, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, &authdto.VerifyResult{Valid: true, Email: "a" + domain, UserID: "u1"}, res)

	uid, email, err := svc.VerifyBearer(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "a"+domain, email)

	out, err := svc.Signout(ctx, token)
	require.NoError(t, err)
	assert.True(t, out.Revoked)

	revoked, _ := deny.IsRevoked(ctx, claims.ID)
	assert.True(t, revoked)

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
	_, err = svc.Signout(ctx, token)
	assert.ErrorIs(t, err, common.ErrTokenRevoked)
}
