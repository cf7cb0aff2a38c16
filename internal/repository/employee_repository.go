package repository

import (
	"leave-management-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	WithTx(tx *gorm.DB) EmployeeRepository
	Create(employee *model.Employee) error
	FindByID(id uint) (*model.Employee, error)
	FindByUserID(userID uint) (*model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) WithTx(tx *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: tx}
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.First(&employee, id).Error
	return &employee, err
}

func (r *employeeRepository) FindByUserID(userID uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("user_id = ?", userID).First(&employee).Error
	return &employee, err
}
