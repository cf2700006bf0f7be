package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMatchPassword(t *testing.T) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{"sha256 match", SHA256Hex(testPassword), testPassword, true},
		{"sha256 uppercase stored digest", "  " + strings.ToUpper(SHA256Hex(testPassword)) + "\n", testPassword, true},
		{"sha256 mismatch", SHA256Hex(testPassword), "wrong", false},
		{"bcrypt match", string(bcryptHash), testPassword, true},
		{"bcrypt mismatch", string(bcryptHash), "wrong", false},
		{"empty hash", "", testPassword, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPassword(tt.hash, tt.password))
		})
	}
}

func TestAdminAuth_InjectedHashTakesPrecedence(t *testing.T) {
	store, dir := newTestStore(t)
	writeAdminFile(t, dir, SHA256Hex("stored-password"))

	auth := NewAdminAuthService(store.Admin(), nil, AdminAuthOptions{PasswordHash: SHA256Hex(testPassword)}, nopLogger)

	assert.NoError(t, auth.Verify(context.Background(), testPassword, "1.1.1.1"))
	assert.ErrorIs(t, auth.Verify(context.Background(), "stored-password", "1.1.1.1"), ErrInvalidPassword)
}

func TestAdminAuth_FallsBackToStoredCredential(t *testing.T) {
	store, dir := newTestStore(t)
	auth := NewAdminAuthService(store.Admin(), nil, AdminAuthOptions{}, nopLogger)

	assert.ErrorIs(t, auth.Verify(context.Background(), testPassword, "1.1.1.1"), ErrAdminNotConfigured)

	writeAdminFile(t, dir, SHA256Hex(testPassword))
	assert.NoError(t, auth.Verify(context.Background(), testPassword, "1.1.1.1"))
}

func TestAdminAuth_EmptyPasswordRejectedFirst(t *testing.T) {
	store, _ := newTestStore(t)
	// 未配置凭据时空密码仍然返回参数错误，说明没有进行摘要比较
	auth := NewAdminAuthService(store.Admin(), nil, AdminAuthOptions{}, nopLogger)

	assert.ErrorIs(t, auth.Verify(context.Background(), "", "1.1.1.1"), ErrPasswordRequired)
}

func TestAdminAuth_LocksAfterRepeatedFailures(t *testing.T) {
	store, _ := newTestStore(t)
	mr, client := newTestRedis(t)
	auth := NewAdminAuthService(store.Admin(), client, AdminAuthOptions{
		PasswordHash: SHA256Hex(testPassword),
		MaxFailures:  3,
		LockWindow:   time.Minute,
	}, nopLogger)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, auth.Verify(ctx, "wrong", "10.0.0.1"), ErrInvalidPassword)
	}

	assert.ErrorIs(t, auth.Verify(ctx, testPassword, "10.0.0.1"), ErrTooManyAttempts)
	assert.NoError(t, auth.Verify(ctx, testPassword, "10.0.0.2"), "other clients are unaffected")

	mr.FastForward(time.Minute + time.Second)
	assert.NoError(t, auth.Verify(ctx, testPassword, "10.0.0.1"))
}

func TestAdminAuth_LimiterDisabledWithoutRedis(t *testing.T) {
	store, _ := newTestStore(t)
	auth := NewAdminAuthService(store.Admin(), nil, AdminAuthOptions{
		PasswordHash: SHA256Hex(testPassword),
		MaxFailures:  1,
		LockWindow:   time.Minute,
	}, nopLogger)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.ErrorIs(t, auth.Verify(ctx, "wrong", "10.0.0.1"), ErrInvalidPassword)
	}
	assert.NoError(t, auth.Verify(ctx, testPassword, "10.0.0.1"))
}
