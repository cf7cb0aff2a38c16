package model

import "time"

// Employee is the profile record created alongside a User at registration.
// Exactly one per user.
type Employee struct {
	EmployeeID  uint      `json:"employee_id" gorm:"column:employee_id;primaryKey;autoIncrement"`
	UserID      uint      `json:"user_id" gorm:"column:user_id;not null;uniqueIndex"`
	FirstName   string    `json:"first_name" gorm:"column:first_name;size:255;not null"`
	LastName    string    `json:"last_name" gorm:"column:last_name;size:255"`
	DateOfBirth time.Time `json:"date_of_birth" gorm:"column:date_of_birth;not null"`
	Department  string    `json:"department" gorm:"column:department;size:255;not null"`
	Position    string    `json:"position" gorm:"column:position;size:255;not null"`
	DateJoined  time.Time `json:"date_joined" gorm:"column:date_joined;not null"`
}

func (Employee) TableName() string { return "employees" }
