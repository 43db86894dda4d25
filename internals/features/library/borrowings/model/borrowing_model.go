package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookModel "pustakaku_backend/internals/features/library/books/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
)

/* =========================
   Snapshot payload (JSONB)
   ========================= */

// What the copy looked like at checkout time; borrowings are historical
// records and must stay readable even if the catalog row changes later.
type BorrowingBookSnapshotPayload struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title,omitempty"`
	InventoryNumber string `json:"inventory_number,omitempty"`
}

/* =========================
   Model: borrowings
   ========================= */

type BorrowingModel struct {
	BorrowingID uint `gorm:"primaryKey;autoIncrement;column:borrowing_id" json:"borrowing_id"`

	// FKs RESTRICT: borrowings are never deleted, and rows they reference
	// must not be deletable out from under them.
	BorrowingBookInstanceID uint      `gorm:"not null;index;column:borrowing_book_instance_id;constraint:OnDelete:RESTRICT" json:"borrowing_book_instance_id"`
	BorrowingBorrowerID     uuid.UUID `gorm:"type:uuid;not null;index;column:borrowing_borrower_id;constraint:OnDelete:RESTRICT" json:"borrowing_borrower_id"`

	BorrowingBorrowDate time.Time  `gorm:"not null;column:borrowing_borrow_date"  json:"borrowing_borrow_date"`
	BorrowingDueDate    time.Time  `gorm:"type:date;not null;column:borrowing_due_date" json:"borrowing_due_date"`
	BorrowingReturnDate *time.Time `gorm:"column:borrowing_return_date"           json:"borrowing_return_date,omitempty"`

	BorrowingIsReturned bool    `gorm:"not null;default:false;column:borrowing_is_returned" json:"borrowing_is_returned"`
	BorrowingFine       float64 `gorm:"type:numeric(6,2);not null;default:0;column:borrowing_fine" json:"borrowing_fine"`

	BorrowingBookSnapshot datatypes.JSON `gorm:"type:jsonb;column:borrowing_book_snapshot" json:"borrowing_book_snapshot,omitempty"`

	BookInstance *bookModel.BookInstanceModel `gorm:"foreignKey:BorrowingBookInstanceID;references:BookInstanceID" json:"book_instance,omitempty"`
	Borrower     *userModel.UserModel         `gorm:"foreignKey:BorrowingBorrowerID;references:ID"                 json:"borrower,omitempty"`

	BorrowingCreatedAt time.Time `gorm:"column:borrowing_created_at;autoCreateTime" json:"borrowing_created_at"`
	BorrowingUpdatedAt time.Time `gorm:"column:borrowing_updated_at;autoUpdateTime" json:"borrowing_updated_at"`
}

func (BorrowingModel) TableName() string { return "borrowings" }

func ScopeOpen(db *gorm.DB) *gorm.DB {
	return db.Where("borrowing_is_returned = ?", false)
}
