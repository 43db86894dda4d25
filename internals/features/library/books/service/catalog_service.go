package service

import (
	"gorm.io/gorm"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

// CatalogService covers book-side bookkeeping: creating a title with its
// physical copies, growing holdings and resizing totals.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// CreateBookWithInstances inserts a book with total = available =
// len(conditions), attaches authors/genres and fans out one instance per
// condition entry, all in one transaction. Inventory numbers come from the
// instance BeforeCreate hook.
func (s *CatalogService) CreateBookWithInstances(book *bookModel.BookModel, authors []authorModel.AuthorModel, genres []genreModel.GenreModel, conditions []string) error {
	if len(conditions) == 0 {
		conditions = []string{bookModel.ConditionGood}
	}
	book.BookTotalCopies = len(conditions)
	book.BookAvailableCopies = len(conditions)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors", "Genres", "Instances").Create(book).Error; err != nil {
			return err
		}
		if len(authors) > 0 {
			if err := tx.Model(book).Association("Authors").Replace(authors); err != nil {
				return err
			}
		}
		if len(genres) > 0 {
			if err := tx.Model(book).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		for _, condition := range conditions {
			inst := bookModel.BookInstanceModel{
				BookInstanceBookID:      book.BookID,
				BookInstanceCondition:   condition,
				BookInstanceIsAvailable: true,
			}
			if err := tx.Create(&inst).Error; err != nil {
				return err
			}
			book.Instances = append(book.Instances, inst)
		}
		return nil
	})
}

// AddInstance registers one more physical copy of an existing book and bumps
// both copy counters with it.
func (s *CatalogService) AddInstance(bookID uint, condition string) (*bookModel.BookInstanceModel, error) {
	var inst *bookModel.BookInstanceModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			return err
		}

		created := bookModel.BookInstanceModel{
			BookInstanceBookID:      book.BookID,
			BookInstanceCondition:   condition,
			BookInstanceIsAvailable: true,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		book.BookTotalCopies++
		book.BookAvailableCopies++
		if err := tx.Save(&book).Error; err != nil {
			return err
		}

		inst = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// SetCopyCounts updates a book's total holdings. Saving through the model
// runs the BeforeSave clamp, so shrinking total pulls available down with it.
func (s *CatalogService) SetCopyCounts(bookID uint, totalCopies int) (*bookModel.BookModel, error) {
	var book bookModel.BookModel
	if err := s.DB.First(&book, "book_id = ?", bookID).Error; err != nil {
		return nil, err
	}
	book.BookTotalCopies = totalCopies
	if err := s.DB.Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}
