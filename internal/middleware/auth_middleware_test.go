package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-secadmin-ws/internal/middleware"
	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/pkg/jwt"
)

// stubUserRepo serves a fixed set of users; only the lookup methods matter
// to the middleware.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindAll() ([]model.User, error) { return nil, nil }

func (r *stubUserRepo) Create(*model.User) error { return nil }

func (r *stubUserRepo) Update(*model.User) error { return nil }

func (r *stubUserRepo) Delete(uuid.UUID) error { return nil }

func (r *stubUserRepo) UpdateTokenVersion(uuid.UUID, string) error { return nil }

func (r *stubUserRepo) UpdatePassword(uuid.UUID, string) error { return nil }

func (r *stubUserRepo) SeedDefaults() error { return nil }

func newApp(repo repository.UserRepository) *fiber.App {
	app := fiber.New()
	guarded := app.Group("", middleware.RequireAuth(repo))
	guarded.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	guarded.Delete("/users/:id",
		middleware.RequirePermission(model.Perm(model.ResourceUsers, model.VerbDelete)),
		func(c *fiber.Ctx) error {
			return c.SendString("deleted")
		})
	return app
}

func makeUser(roleCode, tokenVersion string) *model.User {
	return &model.User{
		BaseModel:    model.BaseModel{ID: uuid.New()},
		Email:        roleCode + "@myers.security",
		Name:         "Test " + roleCode,
		RoleCode:     roleCode,
		Status:       model.StatusActive,
		TokenVersion: tokenVersion,
	}
}

func tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(u.ID, u.Email, u.Name, u.RoleCode, u.TokenVersion)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	admin := makeUser(model.RoleAdmin, "v1")
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{admin.ID: admin}}
	app := newApp(repo)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 401, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 401, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	})

	t.Run("stale token version", func(t *testing.T) {
		stale := *admin
		stale.TokenVersion = "v0"
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, &stale))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 401, resp.StatusCode)
	})
}

func TestRequireAuthInactiveUser(t *testing.T) {
	t.Parallel()

	inactive := makeUser(model.RoleAdmin, "v1")
	inactive.Status = model.StatusInactive
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{inactive.ID: inactive}}
	app := newApp(repo)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, inactive))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	t.Parallel()

	admin := makeUser(model.RoleAdmin, "v1")
	viewer := makeUser(model.RoleUser, "v1")
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{
		admin.ID:  admin,
		viewer.ID: viewer,
	}}
	app := newApp(repo)

	t.Run("admin may delete users", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/users/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	})

	t.Run("user role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/users/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, viewer))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 403, resp.StatusCode)
	})
}
