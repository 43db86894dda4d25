package model

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

type BookModel struct {
	BookID          uint    `gorm:"primaryKey;autoIncrement;column:book_id"        json:"book_id"`
	BookTitle       string  `gorm:"type:varchar(255);not null;column:book_title"   json:"book_title"`
	BookISBN        *string `gorm:"type:varchar(13);uniqueIndex;column:book_isbn"  json:"book_isbn,omitempty"`
	BookDescription string  `gorm:"type:text;column:book_description"              json:"book_description"`

	BookPublicationYear *int `gorm:"column:book_publication_year" json:"book_publication_year,omitempty"`

	// Copy bookkeeping. available <= total is enforced in BeforeSave; the
	// per-checkout decrement/increment lives in the borrowing service.
	BookTotalCopies     int `gorm:"not null;default:1;column:book_total_copies"     json:"book_total_copies"`
	BookAvailableCopies int `gorm:"not null;default:1;column:book_available_copies" json:"book_available_copies"`

	Authors   []authorModel.AuthorModel `gorm:"many2many:book_authors;foreignKey:BookID;joinForeignKey:book_id;references:AuthorID;joinReferences:author_id" json:"authors,omitempty"`
	Genres    []genreModel.GenreModel   `gorm:"many2many:book_genres;foreignKey:BookID;joinForeignKey:book_id;references:GenreID;joinReferences:genre_id"    json:"genres,omitempty"`
	Instances []BookInstanceModel       `gorm:"foreignKey:BookInstanceBookID;references:BookID" json:"instances,omitempty"`

	BookCreatedAt time.Time      `gorm:"column:book_created_at;autoCreateTime" json:"book_created_at"`
	BookUpdatedAt time.Time      `gorm:"column:book_updated_at;autoUpdateTime" json:"book_updated_at"`
	BookDeletedAt gorm.DeletedAt `gorm:"column:book_deleted_at;index"          json:"book_deleted_at,omitempty"`
}

func (BookModel) TableName() string { return "books" }

// ============ Hooks: copy-count invariant ============
// available_copies may never exceed total_copies; shrinking total clamps the
// stale availability down instead of leaving it dangling.
func (m *BookModel) BeforeSave(tx *gorm.DB) error {
	m.BookTitle = strings.TrimSpace(m.BookTitle)

	if m.BookTotalCopies < 1 {
		return errors.New("book_total_copies must be >= 1")
	}
	if m.BookAvailableCopies < 0 {
		return errors.New("book_available_copies must be >= 0")
	}
	if m.BookAvailableCopies > m.BookTotalCopies {
		m.BookAvailableCopies = m.BookTotalCopies
	}

	if m.BookISBN != nil {
		v := strings.TrimSpace(*m.BookISBN)
		if v == "" {
			m.BookISBN = nil
		} else {
			m.BookISBN = &v
		}
	}
	return nil
}

func ScopeOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("book_title ASC")
}
