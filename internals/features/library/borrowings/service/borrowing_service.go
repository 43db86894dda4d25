package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "pustakaku_backend/internals/features/library/books/model"
	borrowingModel "pustakaku_backend/internals/features/library/borrowings/model"
)

// ErrInstanceUnavailable is returned when a checkout targets a copy that is
// already out. Callers must pick a different copy; the service never retries.
var ErrInstanceUnavailable = errors.New("book instance is not available")

const DefaultFinePerDay = 0.50

// BorrowingService owns the paired updates between a borrowing row, its
// book instance's availability flag and the book's available_copies counter.
// Every mutation here runs as one transaction: a flipped flag without the
// matching counter change is exactly the desync this service exists to prevent.
type BorrowingService struct {
	DB *gorm.DB

	// FinePerDay is charged per day past due at return time. Zero disables fines.
	FinePerDay float64

	// Now is swappable for tests.
	Now func() time.Time
}

func NewBorrowingService(db *gorm.DB) *BorrowingService {
	return &BorrowingService{
		DB:         db,
		FinePerDay: DefaultFinePerDay,
		Now:        time.Now,
	}
}

// CreateBorrowing checks a copy out to a borrower. As one atomic unit it
// marks the instance unavailable, decrements the owning book's
// available_copies and inserts the borrowing row. Fails with
// ErrInstanceUnavailable (state untouched) when the copy is already out.
func (s *BorrowingService) CreateBorrowing(instanceID uint, borrowerID uuid.UUID, borrowDate, dueDate time.Time) (*borrowingModel.BorrowingModel, error) {
	var created *borrowingModel.BorrowingModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var inst bookModel.BookInstanceModel
		if err := tx.Preload("Book").First(&inst, "book_instance_id = ?", instanceID).Error; err != nil {
			return err
		}
		if !inst.BookInstanceIsAvailable {
			return ErrInstanceUnavailable
		}

		if err := tx.Model(&bookModel.BookInstanceModel{}).
			Where("book_instance_id = ?", inst.BookInstanceID).
			UpdateColumn("book_instance_is_available", false).Error; err != nil {
			return err
		}
		// Hookless update, so the expression itself must hold the lower bound:
		// available_copies never goes below 0 even if the counter drifted.
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", inst.BookInstanceBookID).
			UpdateColumn("book_available_copies", gorm.Expr(
				"CASE WHEN book_available_copies > 0 THEN book_available_copies - 1 ELSE 0 END",
			)).Error; err != nil {
			return err
		}

		snap := borrowingModel.BorrowingBookSnapshotPayload{
			BookID:          inst.BookInstanceBookID,
			InventoryNumber: inst.BookInstanceInventoryNumber,
		}
		if inst.Book != nil {
			snap.Title = inst.Book.BookTitle
		}
		raw, err := json.Marshal(snap)
		if err != nil {
			return err
		}

		b := &borrowingModel.BorrowingModel{
			BorrowingBookInstanceID: inst.BookInstanceID,
			BorrowingBorrowerID:     borrowerID,
			BorrowingBorrowDate:     borrowDate,
			BorrowingDueDate:        dueDate,
			BorrowingIsReturned:     false,
			BorrowingFine:           0,
			BorrowingBookSnapshot:   raw,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// MarkReturned completes a borrowing: stamps the return time, flips the copy
// back to available and re-increments the book counter, exactly once.
// Calling it on an already-returned borrowing is a no-op.
func (s *BorrowingService) MarkReturned(borrowingID uint) (*borrowingModel.BorrowingModel, error) {
	var out *borrowingModel.BorrowingModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var b borrowingModel.BorrowingModel
		if err := tx.First(&b, "borrowing_id = ?", borrowingID).Error; err != nil {
			return err
		}
		if b.BorrowingIsReturned {
			out = &b
			return nil
		}

		var inst bookModel.BookInstanceModel
		if err := tx.First(&inst, "book_instance_id = ?", b.BorrowingBookInstanceID).Error; err != nil {
			return err
		}

		now := s.Now()
		b.BorrowingIsReturned = true
		b.BorrowingReturnDate = &now
		b.BorrowingFine = s.fineFor(b.BorrowingDueDate, now)

		if err := tx.Model(&borrowingModel.BorrowingModel{}).
			Where("borrowing_id = ?", b.BorrowingID).
			Updates(map[string]interface{}{
				"borrowing_is_returned": true,
				"borrowing_return_date": now,
				"borrowing_fine":        b.BorrowingFine,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&bookModel.BookInstanceModel{}).
			Where("book_instance_id = ?", inst.BookInstanceID).
			UpdateColumn("book_instance_is_available", true).Error; err != nil {
			return err
		}
		// Capped at total_copies: if totals were shrunk while this copy was
		// out, the returned copy must not push availability past the total.
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", inst.BookInstanceBookID).
			UpdateColumn("book_available_copies", gorm.Expr(
				"CASE WHEN book_available_copies < book_total_copies THEN book_available_copies + 1 ELSE book_available_copies END",
			)).Error; err != nil {
			return err
		}

		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BorrowingService) fineFor(due, returned time.Time) float64 {
	if s.FinePerDay <= 0 || !returned.After(due) {
		return 0
	}
	days := int(returned.Sub(due).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return float64(days) * s.FinePerDay
}
