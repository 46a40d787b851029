package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	autherrors "github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth/errors"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/domain"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
)

// fakeEmployeeRepo serves a fixed set of rows keyed by username.
type fakeEmployeeRepo struct {
	employee.Repository
	byUsername map[string]*employee.Employee
	byID       map[uint]*employee.Employee
}

func newFakeEmployeeRepo(rows ...*employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		byUsername: make(map[string]*employee.Employee),
		byID:       make(map[uint]*employee.Employee),
	}
	for _, e := range rows {
		f.byUsername[e.Username] = e
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) FindByUsername(_ context.Context, username string) (*employee.Employee, error) {
	e, ok := f.byUsername[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id uint) (*employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func seededRepo(t *testing.T) *fakeEmployeeRepo {
	t.Helper()
	hash, err := SHA256Hasher{}.Hash("pass123")
	require.NoError(t, err)
	return newFakeEmployeeRepo(&employee.Employee{
		ID:           7,
		Name:         "Jane Silva",
		Username:     "jane",
		PasswordHash: hash,
		HourlyRate:   100,
		Role:         domain.RoleEmployee,
	})
}

func TestVerify(t *testing.T) {
	svc := NewService(seededRepo(t))
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Verify(ctx, "ghost", "pass123")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Verify(ctx, "jane", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("correct credentials", func(t *testing.T) {
		e, err := svc.Verify(ctx, "jane", "pass123")
		require.NoError(t, err)
		assert.Equal(t, uint(7), e.ID)
		assert.Equal(t, domain.RoleEmployee, e.Role)
	})
}

func TestLogin_IssuesSignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(seededRepo(t))

	token, resp, err := svc.Login(context.Background(), "jane", "pass123")
	require.NoError(t, err)

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "jane", resp.Username)
	assert.Equal(t, "Jane Silva", resp.Name)
	assert.InDelta(t, 100.0, resp.HourlyRate, 1e-9)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "jane", claims["username"])
	assert.Equal(t, domain.RoleEmployee, claims["role"])
	_, hasExp := claims["exp"]
	assert.False(t, hasExp)
}

func TestLogin_RejectedCredentialsDoNotLeakToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(seededRepo(t))

	token, _, err := svc.Login(context.Background(), "jane", "nope")
	assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	assert.Empty(t, token)
}

func TestGetMe(t *testing.T) {
	svc := NewService(seededRepo(t))

	resp, err := svc.GetMe(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "jane", resp.Username)

	_, err = svc.GetMe(context.Background(), 999)
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
