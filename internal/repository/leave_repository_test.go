package repository

import (
	"testing"
	"time"

	"leave-management-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.LeaveApplication{},
		&model.LeaveReview{},
	))
	return db
}

func newApplication(employeeID uint, submitted time.Time) *model.LeaveApplication {
	return &model.LeaveApplication{
		EmployeeID:      employeeID,
		LeaveType:       "annual",
		LeaveMode:       "full-day",
		StartDate:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Reason:          "family trip",
		Status:          model.LeaveStatusPending,
		ApplicationDate: submitted,
	}
}

func TestFindApplicationsByEmployeeIDOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := newApplication(1, base)
	newest := newApplication(1, base.Add(48*time.Hour))
	middle := newApplication(1, base.Add(24*time.Hour))
	other := newApplication(2, base.Add(72*time.Hour))

	for _, app := range []*model.LeaveApplication{oldest, newest, middle, other} {
		require.NoError(t, repo.CreateApplication(app))
	}

	list, err := repo.FindApplicationsByEmployeeID(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, newest.LeaveApplicationID, list[0].LeaveApplicationID)
	assert.Equal(t, middle.LeaveApplicationID, list[1].LeaveApplicationID)
	assert.Equal(t, oldest.LeaveApplicationID, list[2].LeaveApplicationID)

	all, err := repo.FindAllApplications()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, other.LeaveApplicationID, all[0].LeaveApplicationID)
}

func TestSaveReviewUpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)

	app := newApplication(1, time.Now())
	require.NoError(t, repo.CreateApplication(app))

	_, err := repo.FindReviewByApplicationID(app.LeaveApplicationID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	first := "looks fine"
	review := &model.LeaveReview{
		LeaveApplicationID: app.LeaveApplicationID,
		ReviewedBy:         9,
		ReviewDate:         time.Now(),
		Status:             model.LeaveStatusAccepted,
		Comments:           &first,
	}
	require.NoError(t, repo.SaveReview(review))

	// Re-review overwrites in place.
	stored, err := repo.FindReviewByApplicationID(app.LeaveApplicationID)
	require.NoError(t, err)
	second := "changed my mind"
	stored.Status = model.LeaveStatusDenied
	stored.Comments = &second
	require.NoError(t, repo.SaveReview(stored))

	var count int64
	require.NoError(t, db.Model(&model.LeaveReview{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	final, err := repo.FindReviewByApplicationID(app.LeaveApplicationID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusDenied, final.Status)
	require.NotNil(t, final.Comments)
	assert.Equal(t, second, *final.Comments)
}

func TestUpdateApplicationStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaveRepository(db)

	app := newApplication(1, time.Now())
	require.NoError(t, repo.CreateApplication(app))

	require.NoError(t, repo.UpdateApplicationStatus(app.LeaveApplicationID, model.LeaveStatusAccepted))

	stored, err := repo.FindApplicationByID(app.LeaveApplicationID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusAccepted, stored.Status)
}
