package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventiqo/eventiqo-backend/internal/apperrors"
	"github.com/eventiqo/eventiqo-backend/internal/core/domain"
	"github.com/eventiqo/eventiqo-backend/internal/middleware"
	"github.com/eventiqo/eventiqo-backend/internal/platform/config"
	"github.com/eventiqo/eventiqo-backend/internal/platform/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserRepository serves a single user by ID, standing in for live storage.
type stubUserRepository struct {
	user *domain.User
}

func (s *stubUserRepository) SaveUser(ctx context.Context, user domain.User) error { return nil }

func (s *stubUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if s.user == nil || s.user.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubUserRepository) FindTeam(ctx context.Context, ownerID string) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindAllUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepository) UpdateProfile(ctx context.Context, user domain.User) error { return nil }

func (s *stubUserRepository) UpdateCredentials(ctx context.Context, userID, passwordHash string, isFirstLogin bool) error {
	return nil
}

func (s *stubUserRepository) SetBanned(ctx context.Context, userID string, banned bool) error {
	return nil
}

func (s *stubUserRepository) DeleteUser(ctx context.Context, userID string) error { return nil }

func newGateCodec() *session.Codec {
	return session.NewCodec(&config.Config{
		SessionSecret:         "gate-test-secret",
		SessionExpiryDuration: time.Hour,
		SessionCookieName:     "session",
		SessionIssuer:         "eventiqo-backend",
	})
}

func gateRouter(codec *session.Codec, users *stubUserRepository, paths ...string) *gin.Engine {
	r := gin.New()
	gate := middleware.SessionGate(codec, users)
	for _, p := range paths {
		r.GET(p, gate, func(c *gin.Context) {
			c.String(http.StatusOK, "page")
		})
	}
	return r
}

func requestWithSession(t *testing.T, codec *session.Codec, user *domain.User, path string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != nil {
		token, err := codec.Issue(domain.NewSessionUser(user))
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: codec.CookieName(), Value: token})
	}
	return req
}

func TestSessionGate_AnonymousOnProtectedPageRedirectsToLogin(t *testing.T) {
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{}, "/dashboard/panel")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, nil, "/dashboard/panel"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionGate_AnonymousOnPublicPagePasses(t *testing.T) {
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{}, "/login")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, nil, "/login"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGate_AuthenticatedOnLoginPageRedirectsToLanding(t *testing.T) {
	cases := []struct {
		name    string
		user    *domain.User
		landing string
	}{
		{"manager", &domain.User{UserID: "u-1", Role: domain.RoleManager}, "/dashboard/panel"},
		{"admin", &domain.User{UserID: "u-1", Role: domain.RoleAdmin}, "/dashboard/panel"},
		{"staff", &domain.User{UserID: "u-1", Role: domain.RoleStaff}, "/dashboard/tasks"},
		{"first login", &domain.User{UserID: "u-1", Role: domain.RoleManager, IsFirstLogin: true}, "/complete-profile"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec := newGateCodec()
			r := gateRouter(codec, &stubUserRepository{user: tc.user}, "/login")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, requestWithSession(t, codec, tc.user, "/login"))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tc.landing, w.Header().Get("Location"))
		})
	}
}

func TestSessionGate_AuthenticatedOtherPublicPagesRender(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{user: user}, "/", "/subscribe")

	for _, path := range []string{"/", "/subscribe"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, requestWithSession(t, codec, user, path))
		assert.Equal(t, http.StatusOK, w.Code, "expected %s to render for a logged-in visitor", path)
	}
}

func TestLandingPath_AdminOnlyFromLogin(t *testing.T) {
	// The login response sends admins to the admin area; everyone else gets
	// the same destination the gate uses.
	assert.Equal(t, "/admin", middleware.LandingPath(&domain.User{Role: domain.RoleAdmin}))
	assert.Equal(t, "/complete-profile", middleware.LandingPath(&domain.User{Role: domain.RoleAdmin, IsFirstLogin: true}))
	assert.Equal(t, "/dashboard/tasks", middleware.LandingPath(&domain.User{Role: domain.RoleStaff}))
	assert.Equal(t, "/dashboard/panel", middleware.LandingPath(&domain.User{Role: domain.RoleManager}))
}

func TestSessionGate_FirstLoginPinnedToCompleteProfile(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager, IsFirstLogin: true}
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{user: user}, "/dashboard/panel", "/complete-profile")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/dashboard/panel"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/complete-profile", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/complete-profile"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionGate_OnboardedUserBouncedOffCompleteProfile(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{user: user}, "/complete-profile")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/complete-profile"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/panel", w.Header().Get("Location"))
}

func TestSessionGate_AdminPageRequiresAdminRole(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{user: user}, "/admin")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/admin"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/panel", w.Header().Get("Location"))
}

func TestSessionGate_BannedUserLoggedOut(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager, IsBanned: true}
	codec := newGateCodec()
	r := gateRouter(codec, &stubUserRepository{user: user}, "/dashboard/panel")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/dashboard/panel"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assertSessionCleared(t, w)
}

func TestSessionGate_DeletedUserTreatedAsAnonymous(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()
	// Repository no longer knows the user behind the valid cookie.
	r := gateRouter(codec, &stubUserRepository{}, "/dashboard/panel")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/dashboard/panel"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assertSessionCleared(t, w)
}

func TestRequireSession_MissingCookie(t *testing.T) {
	codec := newGateCodec()
	r := gin.New()
	r.GET("/api/v1/events", middleware.RequireSession(codec), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireLiveUser_DeletedAccountFailsClosed(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()
	r := gin.New()
	r.GET("/api/v1/events",
		middleware.RequireSession(codec),
		middleware.RequireLiveUser(codec, &stubUserRepository{}),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/api/v1/events"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assertSessionCleared(t, w)
}

func TestRequireLiveUser_LookupFailureIsLogged(t *testing.T) {
	user := &domain.User{UserID: "u-1", Role: domain.RoleManager}
	codec := newGateCodec()

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	r := gin.New()
	r.GET("/api/v1/events",
		middleware.StructuredLoggingMiddleware(logger),
		middleware.RequireSession(codec),
		middleware.RequireLiveUser(codec, &stubUserRepository{}),
		func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/api/v1/events"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, logBuf.String(), "session user lookup failed")
	assert.Contains(t, logBuf.String(), "u-1")
}

func TestRequireLiveUser_AttachesCurrentUser(t *testing.T) {
	user := &domain.User{UserID: "u-1", Username: "alice", Role: domain.RoleManager}
	codec := newGateCodec()
	r := gin.New()
	r.GET("/api/v1/me",
		middleware.RequireSession(codec),
		middleware.RequireLiveUser(codec, &stubUserRepository{user: user}),
		func(c *gin.Context) {
			current, ok := middleware.GetCurrentUser(c)
			require.True(t, ok)
			c.String(http.StatusOK, current.Username)
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, requestWithSession(t, codec, user, "/api/v1/me"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func assertSessionCleared(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == "session" {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
			return
		}
	}
	t.Fatal("expected a Set-Cookie clearing the session")
}
