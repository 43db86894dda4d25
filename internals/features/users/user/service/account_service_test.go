package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	userModel "pustakaku_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "accounts.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateBorrowerHashesPassword(t *testing.T) {
	db := openTestDB(t)
	svc := NewAccountService(db)

	u, err := svc.CreateBorrower("reader01", "Reader01@Example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}
	if u.Email != "reader01@example.com" {
		t.Fatalf("email = %q, want lowercased", u.Email)
	}
	if u.Password == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword(u.Password, "s3cretpass") {
		t.Fatal("stored hash does not verify")
	}
	if CheckPassword(u.Password, "wrong") {
		t.Fatal("wrong password verified")
	}
}

func TestCreateBorrowerRejectsDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := NewAccountService(db)

	if _, err := svc.CreateBorrower("reader01", "reader01@example.com", "s3cretpass"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateBorrower("reader01", "other@example.com", "s3cretpass"); err != ErrDuplicateAccount {
		t.Fatalf("duplicate username: err = %v, want ErrDuplicateAccount", err)
	}
	if _, err := svc.CreateBorrower("reader02", "reader01@example.com", "s3cretpass"); err != ErrDuplicateAccount {
		t.Fatalf("duplicate email: err = %v, want ErrDuplicateAccount", err)
	}
}
