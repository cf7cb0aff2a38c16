package usecase

import (
	"errors"
	"strings"
	"time"

	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Placeholder profile values filled in at registration. The profile is
// completed later through whatever HR process exists outside this system.
const (
	defaultDepartment = "Default Department"
	defaultPosition   = "Employee"
)

type AuthUsecase struct {
	db        *gorm.DB
	users     repository.UserRepository
	employees repository.EmployeeRepository
	tokens    *token.Service
}

func NewAuthUsecase(db *gorm.DB, users repository.UserRepository, employees repository.EmployeeRepository, tokens *token.Service) *AuthUsecase {
	return &AuthUsecase{db: db, users: users, employees: employees, tokens: tokens}
}

// SplitName derives the first/last name pair from a display name. The first
// token becomes the first name and the last token the surname; a single-token
// name gets an empty surname.
func SplitName(name string) (first, last string, ok bool) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", "", false
	}
	first = parts[0]
	if len(parts) > 1 {
		last = parts[len(parts)-1]
	}
	return first, last, true
}

// Register creates the user and its employee profile in one transaction.
// A partial insert is never observable: either both rows land or neither.
func (u *AuthUsecase) Register(email, password, name, role string) error {
	first, last, ok := SplitName(name)
	if !ok {
		return ErrNameRequired
	}

	taken, err := u.users.ExistsByEmail(email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role != model.RoleAdmin {
		role = model.RoleEmployee
	}

	today := time.Now()
	return u.db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			Username:     email, // email doubles as the username
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := u.users.WithTx(tx).Create(&user); err != nil {
			return err
		}

		employee := model.Employee{
			UserID:      user.UserID,
			FirstName:   first,
			LastName:    last,
			DateOfBirth: today,
			Department:  defaultDepartment,
			Position:    defaultPosition,
			DateJoined:  today,
		}
		return u.employees.WithTx(tx).Create(&employee)
	})
}

// Login verifies the credentials and issues an access/refresh token pair.
// Unknown email and wrong password both come back as ErrInvalidCredentials so
// the response does not leak which one it was.
func (u *AuthUsecase) Login(email, password string) (*token.Pair, *model.User, error) {
	user, err := u.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := u.tokens.IssuePair(user.UserID)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}
