package database

import (
	"gorm.io/gorm"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	borrowingModel "pustakaku_backend/internals/features/library/borrowings/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
)

// AutoMigrate creates/updates the catalog schema. Order matters: join and FK
// targets first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authorModel.AuthorModel{},
		&genreModel.GenreModel{},
		&bookModel.BookModel{},
		&bookModel.BookInstanceModel{},
		&borrowingModel.BorrowingModel{},
	)
}
