package authhdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"sentiment_dashboard/core/global"
	authsvc "sentiment_dashboard/internal/api/auth/service"
	"sentiment_dashboard/internal/api/middleware"
	"sentiment_dashboard/internal/database/databasetest"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const domain = "@joineverestgroup.com"

func newApp(t *testing.T, users *databasetest.FakeCollection) (*fiber.App, *authsvc.UserService) {
	t.Helper()
	global.InitValidator()
	global.SetAllowedEmailDomain(domain)
	t.Cleanup(func() { global.SetAllowedEmailDomain("") })

	deny := authsvc.NewCacheDenylist()
	t.Cleanup(deny.Close)
	svc := authsvc.NewUserServiceWith(users, authsvc.NewTokenIssuer("secret", time.Hour), deny, domain)
	h := NewAuthHandler(svc)

	app := fiber.New()
	app.Post("/api/signup", h.HandleSignup)
	app.Post("/api/signin", h.HandleSignin)
	app.Group("/api/verify").Use(middleware.AuthMiddleware(svc)).Get("", h.HandleVerify)
	app.Group("/api/signout").Use(middleware.AuthMiddleware(svc)).Post("", h.HandleSignout)
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, target, contentType string, body io.Reader, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func signinForm(user, pass string) io.Reader {
	return strings.NewReader(url.Values{"username": {user}, "password": {pass}}.Encode())
}

func TestSignupHandler(t *testing.T) {
	users := &databasetest.FakeCollection{}
	app, _ := newApp(t, users)

	status, body := do(t, app, "POST", "/api/signup", "application/json",
		strings.NewReader(`{"email":"new`+domain+`","password":"password1"}`), "")
	assert.Equal(t, 201, status)
	assert.Equal(t, "new"+domain, body["email"])
	assert.NotEmpty(t, body["user_id"])

	status, body = do(t, app, "POST", "/api/signup", "application/json",
		strings.NewReader(`{"email":"new@gmail.com","password":"password1"}`), "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "VAL_001", body["code"])
	details := body["details"].([]interface{})
	assert.Equal(t, "email_domain", details[0].(map[string]interface{})["rule"])

	status, body = do(t, app, "POST", "/api/signup", "application/json", strings.NewReader(`{bad`), "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "VAL_002", body["code"])
}

func TestSigninVerifySignoutFlow(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &databasetest.FakeCollection{
		FindOneFunc: func(interface{}) (interface{}, error) {
			return bson.M{"_id": primitive.NewObjectID(), "email": "a" + domain, "password": string(hash)}, nil
		},
	}
	app, _ := newApp(t, users)
	form := "application/x-www-form-urlencoded"

	status, body := do(t, app, "POST", "/api/signin", form, signinForm("a"+domain, "wrong"), "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "AUTH_002", body["code"])

	status, body = do(t, app, "POST", "/api/signin", form, signinForm("", ""), "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "VAL_001", body["code"])

	status, body = do(t, app, "POST", "/api/signin", form, signinForm("a"+domain, "password1"), "")
	require.Equal(t, 200, status)
	assert.Equal(t, "bearer", body["token_type"])
	token := body["access_token"].(string)

	status, body = do(t, app, "GET", "/api/verify", "", nil, token)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "a"+domain, body["email"])

	status, body = do(t, app, "POST", "/api/signout", "", nil, token)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["revoked"])

	status, body = do(t, app, "GET", "/api/verify", "", nil, token)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Token has been revoked", body["message"])
}

func TestVerifyMissingToken(t *testing.T) {
	app, _ := newApp(t, &databasetest.FakeCollection{})
	status, body := do(t, app, "GET", "/api/verify", "", nil, "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "AUTH_001", body["code"])
}
