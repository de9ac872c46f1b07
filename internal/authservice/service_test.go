package authservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruales/apuntes/internal/apperr"
	"github.com/aruales/apuntes/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(store.New(nil))
	svc.now = func() time.Time {
		return time.UnixMilli(1732719845000)
	}
	return svc
}

func TestRegister(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	msg, err := svc.Register(ctx, "Juan Pérez", "juan@example.com", "secret1")
	require.NoError(t, err)
	assert.Contains(t, msg, "Registration successful")

	users := svc.Users(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "1732719845000", users[0].ID)
	assert.Equal(t, "Juan Pérez", users[0].Name)
	assert.Equal(t, "juan@example.com", users[0].Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Juan Pérez", "juan@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Someone Else", "juan@example.com", "other66")
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Juan Pérez", "juan@example.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "juan@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("simulated-token-%s-%d", "1732719845000", int64(1732719845000)), res.Token)
	assert.Equal(t, "Juan Pérez", res.User.Name)
	assert.Equal(t, "juan@example.com", res.User.Email)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Juan Pérez", "juan@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "juan@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestUsers_Empty(t *testing.T) {
	svc := newService(t)
	assert.Empty(t, svc.Users(context.Background()))
}
