package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "pustakaku_backend/internals/features/users/user/model"
)

var ErrDuplicateAccount = errors.New("username or email already registered")

// AccountService creates borrower identities. It owns password hashing so
// callers (controllers, seeder) never see a plaintext column.
type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

func (s *AccountService) CreateBorrower(username, email, password string) (*userModel.UserModel, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &userModel.UserModel{
		UserName: username,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.DB.Create(u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}
	return u, nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
