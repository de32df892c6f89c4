package service_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-secadmin-ws/internal/model"
	"go-secadmin-ws/internal/repository"
	"go-secadmin-ws/internal/service"
)

type fakeRoleRepo struct{}

var _ repository.RoleRepository = (*fakeRoleRepo)(nil)

func (r *fakeRoleRepo) FindAll() ([]model.Role, error) {
	return model.DefaultRoles, nil
}

func (r *fakeRoleRepo) FindByCode(code string) (*model.Role, error) {
	for _, role := range model.DefaultRoles {
		if role.Code == code {
			copied := role
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) SeedDefaults() error { return nil }

// brokenEmailLookupRepo simulates a database outage on the email lookup.
type brokenEmailLookupRepo struct {
	*fakeUserRepo
	err error
}

func (r *brokenEmailLookupRepo) FindByEmail(string) (*model.User, error) {
	return nil, r.err
}

func createRequest(email string) *service.CreateUserRequest {
	return &service.CreateUserRequest{
		Email:    email,
		Password: "hunter22",
		Name:     "New Account",
		Role:     model.RoleUser,
	}
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(seededUsers()...)
	svc := service.NewUserService(repo, &fakeRoleRepo{})

	user, err := svc.CreateUser(createRequest("new@myers.security"), "admin@myers.security")
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, user.Status)
	require.Equal(t, "admin@myers.security", user.CreatedBy)
	require.NotEmpty(t, user.Password, "stored credential must be hashed on creation")
	require.NotEqual(t, "hunter22", user.Password)

	fetched, err := repo.FindByEmail("new@myers.security")
	require.NoError(t, err)
	require.Equal(t, user.ID, fetched.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(seededUsers()...)
	svc := service.NewUserService(repo, &fakeRoleRepo{})

	_, err := svc.CreateUser(createRequest("admin@myers.security"), "admin@myers.security")
	require.ErrorIs(t, err, service.ErrEmailExists)
}

func TestCreateUserLookupFailureIsNotEmailAvailable(t *testing.T) {
	t.Parallel()

	outage := errors.New("connection refused")
	repo := &brokenEmailLookupRepo{fakeUserRepo: newFakeUserRepo(seededUsers()...), err: outage}
	svc := service.NewUserService(repo, &fakeRoleRepo{})

	_, err := svc.CreateUser(createRequest("new@myers.security"), "admin@myers.security")
	require.ErrorIs(t, err, outage)

	// Nothing was created behind the failed check.
	users, err := repo.fakeUserRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, len(seededUsers()))
}

func TestUpdateUserEmailChangeLookupFailure(t *testing.T) {
	t.Parallel()

	base := newFakeUserRepo(seededUsers()...)
	admin, err := base.FindByEmail("admin@myers.security")
	require.NoError(t, err)

	outage := errors.New("connection refused")
	repo := &brokenEmailLookupRepo{fakeUserRepo: base, err: outage}
	svc := service.NewUserService(repo, &fakeRoleRepo{})

	_, err = svc.UpdateUser(admin.ID, &service.UpdateUserRequest{
		Email: "moved@myers.security",
		Name:  admin.Name,
		Role:  admin.RoleCode,
	}, "admin@myers.security")
	require.ErrorIs(t, err, outage)

	unchanged, err := base.FindByID(admin.ID)
	require.NoError(t, err)
	require.Equal(t, "admin@myers.security", unchanged.Email)
}

func TestUpdateUserUnknownID(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo(seededUsers()...)
	svc := service.NewUserService(repo, &fakeRoleRepo{})

	_, err := svc.UpdateUser(uuid.New(), &service.UpdateUserRequest{
		Email: "ghost@myers.security",
		Name:  "Ghost",
		Role:  model.RoleUser,
	}, "admin@myers.security")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
