package usecase

import (
	"testing"
	"time"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeaveUsecase(db *gorm.DB) *LeaveUsecase {
	return NewLeaveUsecase(
		db,
		repository.NewUserRepository(db),
		repository.NewEmployeeRepository(db),
		repository.NewLeaveRepository(db),
		nil,
	)
}

// registerUser creates a user plus profile and returns the user id.
func registerUser(t *testing.T, db *gorm.DB, email, name, role string) uint {
	t.Helper()
	uc := newAuthUsecase(t, db)
	require.NoError(t, uc.Register(email, "secret123", name, role))
	var user model.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user.UserID
}

func validInput() SubmitLeaveInput {
	return SubmitLeaveInput{
		LeaveType: "annual",
		LeaveMode: "full-day",
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "family trip",
	}
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	userID := registerUser(t, db, "jane@example.com", "Jane Doe", "")

	detail, err := uc.Submit(userID, validInput())
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusPending, detail.Application.Status)
	assert.Equal(t, "annual", detail.Application.LeaveType)
	assert.Nil(t, detail.Review)

	var count int64
	require.NoError(t, db.Model(&model.LeaveApplication{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	userID := registerUser(t, db, "jane@example.com", "Jane Doe", "")

	in := validInput()
	in.StartDate = "2024-03-10"
	in.EndDate = "2024-03-01"

	_, err := uc.Submit(userID, in)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "End date")
}

func TestSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	userID := registerUser(t, db, "jane@example.com", "Jane Doe", "")

	tests := []struct {
		name   string
		mutate func(*SubmitLeaveInput)
	}{
		{"empty leave type", func(in *SubmitLeaveInput) { in.LeaveType = "  " }},
		{"empty leave mode", func(in *SubmitLeaveInput) { in.LeaveMode = "" }},
		{"empty reason", func(in *SubmitLeaveInput) { in.Reason = "" }},
		{"bad start date", func(in *SubmitLeaveInput) { in.StartDate = "10-03-2024" }},
		{"bad end date", func(in *SubmitLeaveInput) { in.EndDate = "not-a-date" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Submit(userID, in)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.LeaveApplication{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "validation failures must not insert rows")
}

func TestSubmitWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)

	// User row without an employee profile.
	user := model.User{Username: "ghost", Email: "ghost@example.com", PasswordHash: "x", Role: model.RoleEmployee}
	require.NoError(t, db.Create(&user).Error)

	_, err := uc.Submit(user.UserID, validInput())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestReviewRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	employeeID := registerUser(t, db, "jane@example.com", "Jane Doe", "")

	detail, err := uc.Submit(employeeID, validInput())
	require.NoError(t, err)

	_, err = uc.Review(employeeID, detail.Application.LeaveApplicationID, model.LeaveStatusAccepted, nil)
	assert.ErrorIs(t, err, ErrNotAdmin)

	stored, err := repository.NewLeaveRepository(db).FindApplicationByID(detail.Application.LeaveApplicationID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusPending, stored.Status)
}

func TestReviewUnknownApplication(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	adminID := registerUser(t, db, "admin@example.com", "Admin User", model.RoleAdmin)

	_, err := uc.Review(adminID, 9999, model.LeaveStatusAccepted, nil)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestReviewAndReReview(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	employeeID := registerUser(t, db, "jane@example.com", "Jane Doe", "")
	adminID := registerUser(t, db, "admin@example.com", "Admin User", model.RoleAdmin)

	submitted, err := uc.Submit(employeeID, validInput())
	require.NoError(t, err)
	appID := submitted.Application.LeaveApplicationID

	comments := "approved, enjoy"
	detail, err := uc.Review(adminID, appID, model.LeaveStatusAccepted, &comments)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusAccepted, detail.Application.Status)
	require.NotNil(t, detail.Review)
	assert.Equal(t, adminID, detail.Review.ReviewedBy)
	firstReviewDate := detail.Review.ReviewDate

	// Re-review flips the decision and overwrites the one review row.
	time.Sleep(10 * time.Millisecond)
	newComments := "on second thought, no"
	detail, err = uc.Review(adminID, appID, model.LeaveStatusDenied, &newComments)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusDenied, detail.Application.Status)
	require.NotNil(t, detail.Review)
	require.NotNil(t, detail.Review.Comments)
	assert.Equal(t, newComments, *detail.Review.Comments)
	assert.True(t, detail.Review.ReviewDate.After(firstReviewDate))

	var reviewCount int64
	require.NoError(t, db.Model(&model.LeaveReview{}).Count(&reviewCount).Error)
	assert.Equal(t, int64(1), reviewCount)

	stored, err := repository.NewLeaveRepository(db).FindApplicationByID(appID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusDenied, stored.Status)
}

func TestListScoping(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)
	janeID := registerUser(t, db, "jane@example.com", "Jane Doe", "")
	bobID := registerUser(t, db, "bob@example.com", "Bob Smith", "")
	adminID := registerUser(t, db, "admin@example.com", "Admin User", model.RoleAdmin)

	janeApp, err := uc.Submit(janeID, validInput())
	require.NoError(t, err)
	bobApp, err := uc.Submit(bobID, validInput())
	require.NoError(t, err)

	// Spread the submission times so the ordering assertion is deterministic.
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&model.LeaveApplication{}).
		Where("leave_application_id = ?", janeApp.Application.LeaveApplicationID).
		Update("application_date", base).Error)
	require.NoError(t, db.Model(&model.LeaveApplication{}).
		Where("leave_application_id = ?", bobApp.Application.LeaveApplicationID).
		Update("application_date", base.Add(time.Hour)).Error)

	janeList, err := uc.List(janeID)
	require.NoError(t, err)
	require.Len(t, janeList, 1)
	assert.Equal(t, janeApp.Application.LeaveApplicationID, janeList[0].Application.LeaveApplicationID)
	assert.Nil(t, janeList[0].Employee, "own listing carries no owner annotation")

	adminList, err := uc.List(adminID)
	require.NoError(t, err)
	require.Len(t, adminList, 2, "admin sees every employee's applications")
	assert.Equal(t, bobApp.Application.LeaveApplicationID, adminList[0].Application.LeaveApplicationID)
	require.NotNil(t, adminList[0].Employee)
	assert.Equal(t, "Bob", adminList[0].Employee.FirstName)
	require.NotNil(t, adminList[0].Owner)
	assert.Equal(t, "bob@example.com", adminList[0].Owner.Email)
}

func TestListWithoutUser(t *testing.T) {
	db := newTestDB(t)
	uc := newLeaveUsecase(db)

	_, err := uc.List(12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
