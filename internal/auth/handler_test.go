package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/auth"
	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*auth.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]auth.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

// fakeTokenRepo is an in-memory TokenRepository.
type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*auth.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*auth.RefreshToken)}
}

func (f *fakeTokenRepo) CreateRefreshToken(ctx context.Context, userID int, token string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = &auth.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeTokenRepo) GetRefreshToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.tokens[token]
	if !ok || stored.ExpiresAt.Before(time.Now()) {
		return nil, auth.ErrInvalidRefreshToken
	}
	return stored, nil
}

func (f *fakeTokenRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenRepo) DeleteExpiredTokens(ctx context.Context) error {
	return nil
}

func newAuthRouter(t *testing.T) (chi.Router, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	service := auth.NewService(userRepo, tokenRepo)
	handler := auth.NewHandler(service, logger, metrics.NewMock(), activity.NewRecorder(logger))

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, userRepo, tokenRepo
}

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "John",
		"lastName":         "Doe",
		"email":            "john.doe@example.com",
		"phone":            "9876543210",
		"batch":            "2022",
		"department":       "CSE",
		"password":         "secret123",
		"confirmPassword":  "secret123",
		"terms":            true,
		"registrationDate": time.Now().UTC().Format(time.RFC3339),
	}
}

func postJSON(t *testing.T, router chi.Router, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["detail"]
}

func TestRegister(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv("JWT_SECRET")

	t.Run("success", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		w := postJSON(t, router, "/auth/register", registerBody())

		assert.Equal(t, http.StatusCreated, w.Code)

		var response auth.AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		require.NotNil(t, response.User)
		assert.Equal(t, "john.doe@example.com", response.User.Email)

		var foundAuthCookie bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "token" {
				foundAuthCookie = true
				assert.True(t, cookie.HttpOnly)
			}
		}
		assert.True(t, foundAuthCookie, "auth cookie should be set")
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		first := postJSON(t, router, "/auth/register", registerBody())
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, router, "/auth/register", registerBody())
		assert.Equal(t, http.StatusBadRequest, second.Code)
		assert.Equal(t, "User with this email already exists", detailOf(t, second))
	})

	t.Run("invalid email message", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		body := registerBody()
		body["email"] = "not-an-email"
		w := postJSON(t, router, "/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, auth.MsgInvalidEmail, detailOf(t, w))
	})

	t.Run("missing fields message", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		body := registerBody()
		body["firstName"] = ""
		w := postJSON(t, router, "/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, auth.MsgRequiredFields, detailOf(t, w))
	})

	t.Run("phone is normalized to digits", func(t *testing.T) {
		router, userRepo, _ := newAuthRouter(t)

		body := registerBody()
		body["phone"] = "(987) 654-3210"
		w := postJSON(t, router, "/auth/register", body)
		require.Equal(t, http.StatusCreated, w.Code)

		user, err := userRepo.GetByEmail(context.Background(), "john.doe@example.com")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", user.Phone)
	})
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv("JWT_SECRET")

	t.Run("success", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", registerBody()).Code)

		w := postJSON(t, router, "/auth/login", map[string]string{
			"email":    "john.doe@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response auth.AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.NotEmpty(t, response.AccessToken)

		claims, err := auth.ValidateAccessToken(response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		require.Equal(t, http.StatusCreated, postJSON(t, router, "/auth/register", registerBody()).Code)

		w := postJSON(t, router, "/auth/login", map[string]string{
			"email":    "john.doe@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", detailOf(t, w))
	})

	t.Run("unknown email", func(t *testing.T) {
		router, _, _ := newAuthRouter(t)

		w := postJSON(t, router, "/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", detailOf(t, w))
	})
}

func TestRefreshAndLogout(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv("JWT_SECRET")

	router, _, tokenRepo := newAuthRouter(t)

	w := postJSON(t, router, "/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var registered auth.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))

	t.Run("refresh rotates the access token", func(t *testing.T) {
		w := postJSON(t, router, "/auth/refresh", map[string]string{
			"refreshToken": registered.RefreshToken,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var refreshed auth.AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&refreshed))
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("refresh with bogus token fails", func(t *testing.T) {
		w := postJSON(t, router, "/auth/refresh", map[string]string{
			"refreshToken": "definitely-not-a-token",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout deletes the refresh token", func(t *testing.T) {
		w := postJSON(t, router, "/auth/logout", map[string]string{
			"refreshToken": registered.RefreshToken,
		})

		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := tokenRepo.GetRefreshToken(context.Background(), registered.RefreshToken)
		assert.Error(t, err)
	})
}
