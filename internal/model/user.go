package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	UserID       uint      `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"column:username;size:255;unique;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:255;not null"`
	Email        string    `json:"email" gorm:"column:email;size:255;unique;not null"`
	Role         string    `json:"role" gorm:"column:role;size:20;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }
