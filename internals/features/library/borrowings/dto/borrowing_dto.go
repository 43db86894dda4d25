package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "pustakaku_backend/internals/features/library/borrowings/model"
)

/* =========================
   REQUEST
   ========================= */

type BorrowingCreateRequest struct {
	BookInstanceID uint   `json:"book_instance_id" validate:"required,min=1"`
	BorrowerID     string `json:"borrower_id" validate:"required,uuid4"`

	// optional; default now / now+14d
	BorrowDate *time.Time `json:"borrow_date,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

func (r *BorrowingCreateRequest) Resolve(now time.Time) (borrowerID uuid.UUID, borrowDate, dueDate time.Time, err error) {
	borrowerID, err = uuid.Parse(r.BorrowerID)
	if err != nil {
		return
	}
	borrowDate = now
	if r.BorrowDate != nil {
		borrowDate = *r.BorrowDate
	}
	dueDate = borrowDate.AddDate(0, 0, 14)
	if r.DueDate != nil {
		dueDate = *r.DueDate
	}
	return
}

/* =========================
   RESPONSE
   ========================= */

type BorrowingResponse struct {
	BorrowingID             uint           `json:"borrowing_id"`
	BorrowingBookInstanceID uint           `json:"borrowing_book_instance_id"`
	BorrowingBorrowerID     uuid.UUID      `json:"borrowing_borrower_id"`
	BorrowingBorrowDate     time.Time      `json:"borrowing_borrow_date"`
	BorrowingDueDate        time.Time      `json:"borrowing_due_date"`
	BorrowingReturnDate     *time.Time     `json:"borrowing_return_date,omitempty"`
	BorrowingIsReturned     bool           `json:"borrowing_is_returned"`
	BorrowingFine           float64        `json:"borrowing_fine"`
	BorrowingBookSnapshot   datatypes.JSON `json:"borrowing_book_snapshot,omitempty"`
}

func ToBorrowingResponse(m *model.BorrowingModel) BorrowingResponse {
	return BorrowingResponse{
		BorrowingID:             m.BorrowingID,
		BorrowingBookInstanceID: m.BorrowingBookInstanceID,
		BorrowingBorrowerID:     m.BorrowingBorrowerID,
		BorrowingBorrowDate:     m.BorrowingBorrowDate,
		BorrowingDueDate:        m.BorrowingDueDate,
		BorrowingReturnDate:     m.BorrowingReturnDate,
		BorrowingIsReturned:     m.BorrowingIsReturned,
		BorrowingFine:           m.BorrowingFine,
		BorrowingBookSnapshot:   m.BorrowingBookSnapshot,
	}
}

func ToBorrowingResponses(ms []model.BorrowingModel) []BorrowingResponse {
	out := make([]BorrowingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBorrowingResponse(&ms[i]))
	}
	return out
}
