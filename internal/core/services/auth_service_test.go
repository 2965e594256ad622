package services

import (
	"context"
	"testing"

	"loanguard/internal/adapters/persistence/models"
	"loanguard/internal/adapters/persistence/repositories"
	"loanguard/internal/config"
	"loanguard/internal/core/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test_secret",
			AccessTokenMins: 15,
		},
	}
}

func TestSignUpAndDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewAdminRepository(db), testConfig())
	ctx := context.Background()

	input := &SignUpInput{Username: "marcos", Password: "pass1"}
	require.NoError(t, svc.SignUp(ctx, input))

	// Duplicate sign-up fails without mutating the store.
	err := svc.SignUp(ctx, input)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The stored password is a hash, never the plaintext.
	var admin models.AdminUser
	require.NoError(t, db.Where("username = ?", "marcos").First(&admin).Error)
	assert.NotEqual(t, "pass1", admin.Password)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewAdminRepository(db), testConfig())
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, &SignUpInput{Username: "marcos", Password: "pass1"}))

	token, err := svc.Login(ctx, "marcos", "pass1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	_, err = svc.Login(ctx, "marcos", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "pass1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCheckCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewAdminRepository(db), testConfig())
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, &SignUpInput{Username: "marcos", Password: "pass1"}))
	token, err := svc.Login(ctx, "marcos", "pass1")
	require.NoError(t, err)

	username, err := svc.CheckCredentials(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "marcos", username)

	_, err = svc.CheckCredentials(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCheckCredentialsVanishedSubject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewAdminRepository(db), testConfig())
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, &SignUpInput{Username: "marcos", Password: "pass1"}))
	token, err := svc.Login(ctx, "marcos", "pass1")
	require.NoError(t, err)

	// A signed, unexpired token for a since-deleted admin is rejected.
	require.NoError(t, db.Where("username = ?", "marcos").Delete(&models.AdminUser{}).Error)

	_, err = svc.CheckCredentials(ctx, token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
