package repository

import (
	"leave-management-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	WithTx(tx *gorm.DB) LeaveRepository
	CreateApplication(app *model.LeaveApplication) error
	FindApplicationByID(id uint) (*model.LeaveApplication, error)
	FindApplicationsByEmployeeID(employeeID uint) ([]model.LeaveApplication, error)
	FindAllApplications() ([]model.LeaveApplication, error)
	UpdateApplicationStatus(id uint, status string) error
	FindReviewByApplicationID(applicationID uint) (*model.LeaveReview, error)
	SaveReview(review *model.LeaveReview) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) WithTx(tx *gorm.DB) LeaveRepository {
	return &leaveRepository{db: tx}
}

func (r *leaveRepository) CreateApplication(app *model.LeaveApplication) error {
	return r.db.Create(app).Error
}

func (r *leaveRepository) FindApplicationByID(id uint) (*model.LeaveApplication, error) {
	var app model.LeaveApplication
	err := r.db.First(&app, id).Error
	return &app, err
}

func (r *leaveRepository) FindApplicationsByEmployeeID(employeeID uint) ([]model.LeaveApplication, error) {
	var list []model.LeaveApplication
	err := r.db.Where("employee_id = ?", employeeID).
		Order("application_date desc").
		Find(&list).Error
	return list, err
}

func (r *leaveRepository) FindAllApplications() ([]model.LeaveApplication, error) {
	var list []model.LeaveApplication
	err := r.db.Order("application_date desc").Find(&list).Error
	return list, err
}

func (r *leaveRepository) UpdateApplicationStatus(id uint, status string) error {
	return r.db.Model(&model.LeaveApplication{}).
		Where("leave_application_id = ?", id).
		Update("status", status).Error
}

func (r *leaveRepository) FindReviewByApplicationID(applicationID uint) (*model.LeaveReview, error) {
	var review model.LeaveReview
	err := r.db.Where("leave_application_id = ?", applicationID).First(&review).Error
	return &review, err
}

// SaveReview inserts the review when it has no primary key yet and updates it
// in place otherwise, keeping a single row per application.
func (r *leaveRepository) SaveReview(review *model.LeaveReview) error {
	return r.db.Save(review).Error
}
