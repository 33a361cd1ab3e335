package cartControllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New(
		`ERROR: duplicate key value violates unique constraint "idx_one_active_cart_per_user" (SQLSTATE 23505)`)))
	assert.True(t, isUniqueViolation(errors.New(
		"UNIQUE constraint failed: carts.user_id")))

	assert.False(t, isUniqueViolation(errors.New("connection reset by peer")))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
}

func TestActiveCartRetryAfterLostRace(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// First attempt loses the cart-creation race; the rerun sees the winner's
	// row and succeeds.
	calls := 0
	err = withActiveCartRetry(db, func(tx *gorm.DB) error {
		calls++
		if calls == 1 {
			return errors.New("UNIQUE constraint failed: carts.user_id")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestActiveCartRetryOnlyForUniqueViolations(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	boom := errors.New("connection reset by peer")
	calls := 0
	err = withActiveCartRetry(db, func(tx *gorm.DB) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
