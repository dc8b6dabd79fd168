package repository

import (
	"testing"
	"time"

	"curio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClaimForExecution(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeletionRepository(db)

	deletion := &models.AccountDeletion{
		UserID:      1,
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.DeletionPending,
	}
	assert.NoError(t, repo.Create(deletion))

	claimed, err := repo.ClaimForExecution(deletion.ID)
	assert.NoError(t, err)
	assert.True(t, claimed)

	// the row is spent, a second sweep cannot win it again
	claimed, err = repo.ClaimForExecution(deletion.ID)
	assert.NoError(t, err)
	assert.False(t, claimed)

	var row models.AccountDeletion
	assert.NoError(t, db.First(&row, deletion.ID).Error)
	assert.Equal(t, models.DeletionCompleted, row.Status)
}

func TestClaimForExecutionLosesToCancellation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeletionRepository(db)

	deletion := &models.AccountDeletion{
		UserID:      1,
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.DeletionPending,
	}
	assert.NoError(t, repo.Create(deletion))

	// cancellation lands between FindDue and the sweep's claim
	deletion.Status = models.DeletionCancelled
	assert.NoError(t, repo.Update(deletion))

	claimed, err := repo.ClaimForExecution(deletion.ID)
	assert.NoError(t, err)
	assert.False(t, claimed)

	var row models.AccountDeletion
	assert.NoError(t, db.First(&row, deletion.ID).Error)
	assert.Equal(t, models.DeletionCancelled, row.Status)
}
