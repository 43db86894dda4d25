package dto

import (
	"strings"
	"time"

	authorDto "pustakaku_backend/internals/features/library/authors/dto"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	genreDto "pustakaku_backend/internals/features/library/genres/dto"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	BookTitle           string  `json:"book_title" validate:"required,max=255"`
	BookISBN            *string `json:"book_isbn,omitempty" validate:"omitempty,len=13"`
	BookDescription     string  `json:"book_description"`
	BookPublicationYear *int    `json:"book_publication_year,omitempty" validate:"omitempty,min=0"`

	// number of physical copies to register up front
	Copies    int    `json:"copies" validate:"omitempty,min=1,max=100"`
	Condition string `json:"condition" validate:"omitempty,oneof=excellent good fair damaged"`

	AuthorIDs []uint `json:"author_ids" validate:"required,min=1,dive,min=1"`
	GenreIDs  []uint `json:"genre_ids" validate:"omitempty,dive,min=1"`
}

func (r *BookCreateRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookDescription = strings.TrimSpace(r.BookDescription)
	if r.BookISBN != nil {
		v := strings.TrimSpace(*r.BookISBN)
		if v == "" {
			r.BookISBN = nil
		} else {
			r.BookISBN = &v
		}
	}
	if r.Copies < 1 {
		r.Copies = 1
	}
	if r.Condition == "" {
		r.Condition = bookModel.ConditionGood
	}
}

func (r *BookCreateRequest) ToModel() *bookModel.BookModel {
	return &bookModel.BookModel{
		BookTitle:           r.BookTitle,
		BookISBN:            r.BookISBN,
		BookDescription:     r.BookDescription,
		BookPublicationYear: r.BookPublicationYear,
	}
}

type BookCopiesUpdateRequest struct {
	BookTotalCopies int `json:"book_total_copies" validate:"required,min=1"`
}

type BookInstanceCreateRequest struct {
	Condition string `json:"condition" validate:"omitempty,oneof=excellent good fair damaged"`
}

/* =========================
   RESPONSE
   ========================= */

type BookInstanceResponse struct {
	BookInstanceID              uint      `json:"book_instance_id"`
	BookInstanceBookID          uint      `json:"book_instance_book_id"`
	BookInstanceInventoryNumber string    `json:"book_instance_inventory_number"`
	BookInstanceCondition       string    `json:"book_instance_condition"`
	BookInstanceIsAvailable     bool      `json:"book_instance_is_available"`
	BookInstanceAddedAt         time.Time `json:"book_instance_added_at"`
}

func ToBookInstanceResponse(m *bookModel.BookInstanceModel) BookInstanceResponse {
	return BookInstanceResponse{
		BookInstanceID:              m.BookInstanceID,
		BookInstanceBookID:          m.BookInstanceBookID,
		BookInstanceInventoryNumber: m.BookInstanceInventoryNumber,
		BookInstanceCondition:       m.BookInstanceCondition,
		BookInstanceIsAvailable:     m.BookInstanceIsAvailable,
		BookInstanceAddedAt:         m.BookInstanceAddedAt,
	}
}

func ToBookInstanceResponses(ms []bookModel.BookInstanceModel) []BookInstanceResponse {
	out := make([]BookInstanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookInstanceResponse(&ms[i]))
	}
	return out
}

type BookResponse struct {
	BookID              uint    `json:"book_id"`
	BookTitle           string  `json:"book_title"`
	BookISBN            *string `json:"book_isbn,omitempty"`
	BookDescription     string  `json:"book_description"`
	BookPublicationYear *int    `json:"book_publication_year,omitempty"`
	BookTotalCopies     int     `json:"book_total_copies"`
	BookAvailableCopies int     `json:"book_available_copies"`

	Authors   []authorDto.AuthorResponse `json:"authors,omitempty"`
	Genres    []genreDto.GenreResponse   `json:"genres,omitempty"`
	Instances []BookInstanceResponse     `json:"instances,omitempty"`
}

func ToBookResponse(m *bookModel.BookModel) BookResponse {
	return BookResponse{
		BookID:              m.BookID,
		BookTitle:           m.BookTitle,
		BookISBN:            m.BookISBN,
		BookDescription:     m.BookDescription,
		BookPublicationYear: m.BookPublicationYear,
		BookTotalCopies:     m.BookTotalCopies,
		BookAvailableCopies: m.BookAvailableCopies,
		Authors:             authorDto.ToAuthorResponses(m.Authors),
		Genres:              genreDto.ToGenreResponses(m.Genres),
		Instances:           ToBookInstanceResponses(m.Instances),
	}
}

func ToBookResponses(ms []bookModel.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}
