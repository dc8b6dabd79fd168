package services

import (
	"testing"
	"time"

	"curio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.accountService.Register("New@Example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "new@example.com", result.User.Email)

	login, err := env.accountService.Login("new@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterRejectsWeakAndDuplicate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accountService.Register("a@example.com", "short")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)

	_, err = env.accountService.Register("A@Example.com", "long enough")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)

	_, err = env.accountService.Login("a@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.accountService.Login("nobody@example.com", "long enough")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRequestDeletionSchedulesGracePeriod(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)

	deletion, err := env.accountService.RequestDeletion(result.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DeletionPending, deletion.Status)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), deletion.ScheduledAt, time.Minute)

	_, err = env.accountService.RequestDeletion(result.User.ID)
	assert.ErrorIs(t, err, ErrConflict)

	pending, err := env.accountService.PendingDeletion(result.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, deletion.ID, pending.ID)
}

func TestCancelDeletion(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)

	_, err = env.accountService.CancelDeletion(result.User.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.accountService.RequestDeletion(result.User.ID)
	assert.NoError(t, err)

	cancelled, err := env.accountService.CancelDeletion(result.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.DeletionCancelled, cancelled.Status)

	// a cancelled request does not block a new one
	_, err = env.accountService.RequestDeletion(result.User.ID)
	assert.NoError(t, err)
}

func TestExecuteDuePurgesAccountData(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)
	userID := result.User.ID

	item, err := env.itemService.CreateItem(userID, ItemInput{Title: "Box", Visibility: models.VisibilityPrivate})
	assert.NoError(t, err)
	_, err = env.whitelistService.Add(item.ID, userID, "friend@example.com")
	assert.NoError(t, err)

	keep, err := env.accountService.Register("b@example.com", "long enough")
	assert.NoError(t, err)
	_, err = env.itemService.CreateItem(keep.User.ID, ItemInput{Title: "Keep", Visibility: models.VisibilityPrivate})
	assert.NoError(t, err)

	deletion, err := env.accountService.RequestDeletion(userID)
	assert.NoError(t, err)

	// before the grace period nothing is due
	executed, err := env.accountService.ExecuteDue(time.Now())
	assert.NoError(t, err)
	assert.Zero(t, executed)

	executed, err = env.accountService.ExecuteDue(deletion.ScheduledAt.Add(time.Second))
	assert.NoError(t, err)
	assert.Equal(t, 1, executed)

	var users, items, whitelists int64
	assert.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	assert.NoError(t, env.db.Model(&models.Item{}).Count(&items).Error)
	assert.NoError(t, env.db.Model(&models.ItemWhitelist{}).Count(&whitelists).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), items)
	assert.Zero(t, whitelists)

	var completed models.AccountDeletion
	assert.NoError(t, env.db.First(&completed, deletion.ID).Error)
	assert.Equal(t, models.DeletionCompleted, completed.Status)
}

func TestExecuteDueSkipsCancelled(t *testing.T) {
	env := newTestEnv(t)
	result, err := env.accountService.Register("a@example.com", "long enough")
	assert.NoError(t, err)

	deletion, err := env.accountService.RequestDeletion(result.User.ID)
	assert.NoError(t, err)
	_, err = env.accountService.CancelDeletion(result.User.ID)
	assert.NoError(t, err)

	executed, err := env.accountService.ExecuteDue(deletion.ScheduledAt.Add(time.Hour))
	assert.NoError(t, err)
	assert.Zero(t, executed)

	var users int64
	assert.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}
