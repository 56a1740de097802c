package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

func newUserFixture(t *testing.T) (*UserService, *countingUserRepo, *countingHasher) {
	t.Helper()
	db := newTestDB(t)
	repo := &countingUserRepo{UserRepository: repository.NewGormUserRepository(db)}
	hasher := newCountingHasher()
	svc := NewUserService(repo, hasher, repository.NewGormScope(db), testConfig())
	return svc, repo, hasher
}

func TestCreateUser(t *testing.T) {
	svc, _, hasher := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &models.User{
		Username: "alice",
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "longenough1", user.Password, "password must be stored hashed")
	assert.True(t, hasher.Verify("longenough1", user.Password))
	assert.True(t, user.Active)
	assert.Equal(t, models.RoleAuthor, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, 1, hasher.hashCalls)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, repo, hasher := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "longenough1"})
	require.NoError(t, err)

	hashesBefore := hasher.hashCalls
	emailChecksBefore := repo.emailChecks

	_, err = svc.CreateUser(ctx, &models.User{Username: "alice", Email: "b@x.com", Password: "longenough1"})
	require.Error(t, err)

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "username", dup.Field)
	assert.Equal(t, "username 'alice' is already taken", err.Error())

	// Username validation strictly precedes the email check: the failing
	// call must perform neither an email lookup nor a hash.
	assert.Equal(t, emailChecksBefore, repo.emailChecks)
	assert.Equal(t, hashesBefore, hasher.hashCalls)

	// Zero writes on the failing call.
	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _, hasher := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "longenough1"})
	require.NoError(t, err)

	hashesBefore := hasher.hashCalls

	_, err = svc.CreateUser(ctx, &models.User{Username: "bob", Email: "a@x.com", Password: "longenough1"})
	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, hashesBefore, hasher.hashCalls)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _, hasher := newUserFixture(t)
	ctx := context.Background()

	cases := []struct {
		name      string
		candidate models.User
	}{
		{"short username", models.User{Username: "ab", Email: "a@x.com", Password: "longenough1"}},
		{"bad characters", models.User{Username: "al ice", Email: "a@x.com", Password: "longenough1"}},
		{"bad email", models.User{Username: "alice", Email: "not-an-email", Password: "longenough1"}},
		{"short password", models.User{Username: "alice", Email: "a@x.com", Password: "short"}},
		{"bad role", models.User{Username: "alice", Email: "a@x.com", Password: "longenough1", Role: "SUPERUSER"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, &tc.candidate)
			var invalid *models.ValidationError
			require.True(t, errors.As(err, &invalid), "expected validation error, got %v", err)
		})
	}

	assert.Equal(t, 0, hasher.hashCalls, "hasher must not run on validation failures")
}

func TestFindByIDAbsent(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.FindByID(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByUsernameCaseSensitive(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &models.User{Username: "TestUser", Email: "t@x.com", Password: "longenough1"})
	require.NoError(t, err)

	found, err := svc.FindByUsername(ctx, "TestUser")
	require.NoError(t, err)
	require.NotNil(t, found)

	missed, err := svc.FindByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Nil(t, missed)

	missed, err = svc.FindByUsername(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, missed)
}

func TestDeactivateUser(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.DeactivateUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	created, err := svc.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "longenough1"})
	require.NoError(t, err)

	deactivated, err := svc.DeactivateUser(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)
	assert.Equal(t, created.ID, deactivated.ID)
	assert.Equal(t, created.Username, deactivated.Username)
	assert.Equal(t, created.Email, deactivated.Email)
	assert.Equal(t, created.Role, deactivated.Role)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &models.User{Username: "alice", Email: "a@x.com", Password: "longenough1"})
	require.NoError(t, err)

	token, user, err := svc.Authenticate(ctx, "alice", "longenough1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)

	_, _, err = svc.Authenticate(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate(ctx, "nobody", "longenough1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.DeactivateUser(ctx, created.ID)
	require.NoError(t, err)

	_, _, err = svc.Authenticate(ctx, "alice", "longenough1")
	assert.ErrorIs(t, err, ErrUserInactive)
}
