package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cemunal/contenthub/internal/config"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

// newTestDB opens an isolated in-memory sqlite database. MaxOpenConns is
// pinned to 1 so every connection sees the same :memory: store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ContentType{},
		&models.Content{},
		&models.Media{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: 15 * time.Minute,
	}
}

// countingHasher delegates to a real hasher while counting Hash calls,
// so tests can assert that failed validations never reach the hasher.
type countingHasher struct {
	inner     PasswordHasher
	hashCalls int
}

func newCountingHasher() *countingHasher {
	return &countingHasher{inner: NewBcryptHasher()}
}

func (h *countingHasher) Hash(plaintext string) (string, error) {
	h.hashCalls++
	return h.inner.Hash(plaintext)
}

func (h *countingHasher) Verify(plaintext, digest string) bool {
	return h.inner.Verify(plaintext, digest)
}

// countingUserRepo counts uniqueness lookups to verify check ordering.
type countingUserRepo struct {
	repository.UserRepository
	usernameChecks int
	emailChecks    int
}

func (r *countingUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.usernameChecks++
	return r.UserRepository.ExistsByUsername(ctx, username)
}

func (r *countingUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.emailChecks++
	return r.UserRepository.ExistsByEmail(ctx, email)
}
