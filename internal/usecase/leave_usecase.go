package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmployeeNotFound    = errors.New("employee record not found")
	ErrApplicationNotFound = errors.New("leave application not found")
	ErrNotAdmin            = errors.New("admin role required")
)

// ValidationError marks malformed or missing input; handlers map it to 422.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const dateLayout = "2006-01-02"

// ReviewNotifier is told about review decisions so the employee can be
// notified out of band. Implementations must not block the request.
type ReviewNotifier interface {
	NotifyReviewDecision(email, firstName string, app *model.LeaveApplication, review *model.LeaveReview)
}

// ApplicationDetail bundles an application with its optional review and the
// related identities needed to render a response. Employee and Owner are only
// filled on the admin listing path.
type ApplicationDetail struct {
	Application model.LeaveApplication
	Review      *model.LeaveReview
	Reviewer    *model.User
	Employee    *model.Employee
	Owner       *model.User
}

type SubmitLeaveInput struct {
	LeaveType string
	LeaveMode string
	StartDate string
	EndDate   string
	Reason    string
}

type LeaveUsecase struct {
	db        *gorm.DB
	users     repository.UserRepository
	employees repository.EmployeeRepository
	leaves    repository.LeaveRepository
	notifier  ReviewNotifier
}

func NewLeaveUsecase(db *gorm.DB, users repository.UserRepository, employees repository.EmployeeRepository, leaves repository.LeaveRepository, notifier ReviewNotifier) *LeaveUsecase {
	return &LeaveUsecase{db: db, users: users, employees: employees, leaves: leaves, notifier: notifier}
}

// Submit validates the request and inserts a pending application owned by the
// caller's employee profile. Validation runs before any write.
func (u *LeaveUsecase) Submit(userID uint, in SubmitLeaveInput) (*ApplicationDetail, error) {
	employee, err := u.employees.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"leaveType", &in.LeaveType},
		{"leaveMode", &in.LeaveMode},
		{"startDate", &in.StartDate},
		{"endDate", &in.EndDate},
		{"reason", &in.Reason},
	}
	for _, f := range fields {
		trimmed := strings.TrimSpace(*f.value)
		if trimmed == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Missing or empty field: %s", f.name)}
		}
		*f.value = trimmed
	}

	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}
	endDate, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	}
	if endDate.Before(startDate) {
		return nil, &ValidationError{Message: "End date cannot be before start date"}
	}

	app := model.LeaveApplication{
		EmployeeID: employee.EmployeeID,
		LeaveType:  in.LeaveType,
		LeaveMode:  in.LeaveMode,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     in.Reason,
		Status:     model.LeaveStatusPending,
	}
	if err := u.leaves.CreateApplication(&app); err != nil {
		return nil, err
	}

	return &ApplicationDetail{Application: app}, nil
}

// List returns the applications visible to the caller: admins see every
// application with owner annotations, employees only their own. Both are
// ordered by submission time, newest first.
func (u *LeaveUsecase) List(userID uint) ([]ApplicationDetail, error) {
	user, err := u.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role == model.RoleAdmin {
		return u.listAll()
	}
	return u.listOwn(userID)
}

func (u *LeaveUsecase) listAll() ([]ApplicationDetail, error) {
	apps, err := u.leaves.FindAllApplications()
	if err != nil {
		return nil, err
	}

	details := make([]ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		detail := ApplicationDetail{Application: app}

		if employee, err := u.employees.FindByID(app.EmployeeID); err == nil {
			detail.Employee = employee
			if owner, err := u.users.FindByID(employee.UserID); err == nil {
				detail.Owner = owner
			}
		}

		if err := u.attachReview(&detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (u *LeaveUsecase) listOwn(userID uint) ([]ApplicationDetail, error) {
	employee, err := u.employees.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	apps, err := u.leaves.FindApplicationsByEmployeeID(employee.EmployeeID)
	if err != nil {
		return nil, err
	}

	details := make([]ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		detail := ApplicationDetail{Application: app}
		if err := u.attachReview(&detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (u *LeaveUsecase) attachReview(detail *ApplicationDetail) error {
	review, err := u.leaves.FindReviewByApplicationID(detail.Application.LeaveApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	detail.Review = review
	if reviewer, err := u.users.FindByID(review.ReviewedBy); err == nil {
		detail.Reviewer = reviewer
	}
	return nil
}

// Review records an admin decision on an application. The single review row
// is inserted on first review and overwritten on re-review, and the
// application's own status mirrors the decision. Concurrent reviews of the
// same application are not serialized here; the last writer wins.
func (u *LeaveUsecase) Review(userID, applicationID uint, status string, comments *string) (*ApplicationDetail, error) {
	reviewer, err := u.users.FindByID(userID)
	if err != nil || reviewer.Role != model.RoleAdmin {
		return nil, ErrNotAdmin
	}

	var app *model.LeaveApplication
	var review *model.LeaveReview

	err = u.db.Transaction(func(tx *gorm.DB) error {
		leaves := u.leaves.WithTx(tx)

		app, err = leaves.FindApplicationByID(applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		review, err = leaves.FindReviewByApplicationID(applicationID)
		switch {
		case err == nil:
			review.Status = status
			review.Comments = comments
			review.ReviewedBy = reviewer.UserID
			review.ReviewDate = time.Now()
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = &model.LeaveReview{
				LeaveApplicationID: applicationID,
				ReviewedBy:         reviewer.UserID,
				ReviewDate:         time.Now(),
				Status:             status,
				Comments:           comments,
			}
		default:
			return err
		}
		if err := leaves.SaveReview(review); err != nil {
			return err
		}

		app.Status = status
		return leaves.UpdateApplicationStatus(applicationID, status)
	})
	if err != nil {
		return nil, err
	}

	if u.notifier != nil {
		if employee, err := u.employees.FindByID(app.EmployeeID); err == nil {
			if owner, err := u.users.FindByID(employee.UserID); err == nil {
				go u.notifier.NotifyReviewDecision(owner.Email, employee.FirstName, app, review)
			}
		}
	}

	return &ApplicationDetail{Application: *app, Review: review, Reviewer: reviewer}, nil
}
