package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/dto"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
	"github.com/yukikurage/halisaha-api/internal/services"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

type apiTestEnv struct {
	router       *gin.Engine
	authService  *services.AuthService
	matchService *services.MatchService
	users        repository.UserRepository
}

func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := repository.NewUserRepository(storage.NewStore[models.User](
		storage.NewJSONFile[models.User](filepath.Join(dir, "users.json"), logger)))
	matches := repository.NewMatchRepository(storage.NewStore[models.Match](
		storage.NewJSONFile[models.Match](filepath.Join(dir, "matches.json"), logger)))

	authService := services.NewAuthService(users)
	matchService := services.NewMatchService(matches, users, logger)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	RegisterRoutes(r.Group("/api"),
		NewAuthHandler(authService),
		NewMatchHandler(matchService),
		NewCatalogHandler(services.NewCatalogService()))

	return apiTestEnv{
		router:       r,
		authService:  authService,
		matchService: matchService,
		users:        users,
	}
}

// do sends a request with an optional JSON body and session cookies.
func (e apiTestEnv) do(t *testing.T, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the service and returns its session cookies.
func (e apiTestEnv) register(t *testing.T, username, phone string) (*models.User, []*http.Cookie) {
	t.Helper()

	user, err := e.authService.Register(context.Background(), services.RegisterInput{
		Username: username,
		Password: "secret1",
		FullName: username + " Yılmaz",
		Phone:    phone,
		Position: "orta-saha",
	})
	require.NoError(t, err)

	w := e.do(t, http.MethodPost, "/api/giris", map[string]string{"username": username, "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return user, cookies
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAPITestEnv(t)

	payload := map[string]any{
		"username": "ayse",
		"password": "secret1",
		"fullName": "Ayşe Demir",
		"phone":    "05551234567",
		"position": "kaleci",
		"height":   168,
	}
	w := env.do(t, http.MethodPost, "/api/kayit", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	response := decode[struct {
		Message string      `json:"message"`
		User    dto.UserDTO `json:"user"`
	}](t, w)
	require.Equal(t, "ayse", response.User.Username)
	require.Equal(t, 100, response.User.ReliabilityScore)
	require.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPost, "/api/kayit", payload, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		message  string
	}{
		{"short username", "ay", "secret1", "Kullanıcı adı en az 3 karakter olmalıdır"},
		{"password over bcrypt limit", "ayse", strings.Repeat("a", 73), "Şifre en fazla 72 karakter olabilir"},
		{"reserved seed username", "halisaha", "secret1", "Bu kullanıcı adı kullanılamaz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupAPITestEnv(t)

			w := env.do(t, http.MethodPost, "/api/kayit", map[string]any{
				"username": tt.username,
				"password": tt.password,
				"fullName": "Ayşe Demir",
				"phone":    "05551234567",
				"position": "kaleci",
			}, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			response := decode[map[string]string](t, w)
			require.Equal(t, tt.message, response["error"])
			require.Equal(t, "INVALID_INPUT", response["code"])
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAPITestEnv(t)
	_, cookies := env.register(t, "ayse", "05551234567")

	w := env.do(t, http.MethodGet, "/api/profil", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ayse", decode[dto.UserDTO](t, w).Username)
}

func TestAuthHandler_LoginFailureIsGeneric(t *testing.T) {
	env := setupAPITestEnv(t)
	env.register(t, "ayse", "05551234567")

	wrongPassword := env.do(t, http.MethodPost, "/api/giris", map[string]string{"username": "ayse", "password": "nope123"}, nil)
	unknownUser := env.do(t, http.MethodPost, "/api/giris", map[string]string{"username": "mehmet", "password": "secret1"}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	require.Equal(t, "Hatalı Kullanıcı Adı veya Şifre", decode[map[string]string](t, wrongPassword)["error"])
	require.Empty(t, wrongPassword.Result().Cookies())
}

func TestAuthHandler_ProfileRequiresSession(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodGet, "/api/profil", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	env := setupAPITestEnv(t)

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Username: "current-user",
		Password: "supersecret",
		FullName: "Current User",
		Phone:    "05550000000",
		Position: "defans",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/profil", nil)
	c.Set(constants.ContextKeyUserID, user.ID)

	NewAuthHandler(env.authService).Profile(c)

	require.Equal(t, http.StatusOK, w.Code)
	response := decode[dto.UserDTO](t, w)
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "Current User", response.FullName)
}

func TestAuthHandler_StatusAndLogout(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodGet, "/api/auth/durum", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"authenticated": false}`, w.Body.String())

	_, cookies := env.register(t, "ayse", "05551234567")

	w = env.do(t, http.MethodGet, "/api/auth/durum", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[struct {
		Authenticated bool         `json:"authenticated"`
		User          *dto.UserDTO `json:"user"`
	}](t, w)
	require.True(t, status.Authenticated)
	require.NotNil(t, status.User)
	require.Equal(t, "ayse", status.User.Username)

	w = env.do(t, http.MethodPost, "/api/cikis", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/auth/durum", nil, w.Result().Cookies())
	require.JSONEq(t, `{"authenticated": false}`, w.Body.String())
}
