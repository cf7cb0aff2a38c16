package model

import "time"

// Application statuses. A new application starts as pending and is moved to
// accepted or denied by an admin review. Re-review may flip it again.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusAccepted = "accepted"
	LeaveStatusDenied   = "denied"
)

type LeaveApplication struct {
	LeaveApplicationID uint      `json:"leave_application_id" gorm:"column:leave_application_id;primaryKey;autoIncrement"`
	EmployeeID         uint      `json:"employee_id" gorm:"column:employee_id;not null;index"`
	LeaveType          string    `json:"leave_type" gorm:"column:leave_type;size:50;not null"`
	LeaveMode          string    `json:"leave_mode" gorm:"column:leave_mode;size:20;not null"`
	StartDate          time.Time `json:"start_date" gorm:"column:start_date;not null"`
	EndDate            time.Time `json:"end_date" gorm:"column:end_date;not null"`
	Reason             string    `json:"reason" gorm:"column:reason;type:text;not null"`
	Status             string    `json:"status" gorm:"column:status;size:20;not null;default:pending"`
	ApplicationDate    time.Time `json:"application_date" gorm:"column:application_date;autoCreateTime"`
}

func (LeaveApplication) TableName() string { return "leave_applications" }

// LeaveReview holds the single review record of an application. The unique
// index on leave_application_id enforces the one-review-per-application rule;
// re-reviewing overwrites the row in place.
type LeaveReview struct {
	LeaveReviewID      uint      `json:"leave_review_id" gorm:"column:leave_review_id;primaryKey;autoIncrement"`
	LeaveApplicationID uint      `json:"leave_application_id" gorm:"column:leave_application_id;not null;uniqueIndex"`
	ReviewedBy         uint      `json:"reviewed_by" gorm:"column:reviewed_by;not null"`
	ReviewDate         time.Time `json:"review_date" gorm:"column:review_date"`
	Status             string    `json:"status" gorm:"column:status;size:20;not null"`
	Comments           *string   `json:"comments" gorm:"column:comments;type:text"`
}

func (LeaveReview) TableName() string { return "leave_reviews" }
