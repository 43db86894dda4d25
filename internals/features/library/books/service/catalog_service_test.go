package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authorModel.AuthorModel{},
		&genreModel.GenreModel{},
		&bookModel.BookModel{},
		&bookModel.BookInstanceModel{},
	))
	return db
}

func TestCreateBookWithInstances(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)

	author := authorModel.AuthorModel{AuthorFirstName: "Ursula", AuthorLastName: "Le Guin"}
	require.NoError(t, db.Create(&author).Error)
	genre := genreModel.GenreModel{GenreName: "Science Fiction"}
	require.NoError(t, db.Create(&genre).Error)

	book := bookModel.BookModel{BookTitle: "The Dispossessed"}
	conditions := []string{bookModel.ConditionExcellent, bookModel.ConditionGood, bookModel.ConditionFair}
	require.NoError(t, svc.CreateBookWithInstances(&book, []authorModel.AuthorModel{author}, []genreModel.GenreModel{genre}, conditions))

	require.Equal(t, 3, book.BookTotalCopies)
	require.Equal(t, 3, book.BookAvailableCopies)
	require.Len(t, book.Instances, 3)
	for _, inst := range book.Instances {
		require.True(t, inst.BookInstanceIsAvailable)
		require.NotEmpty(t, inst.BookInstanceInventoryNumber)
	}

	var got bookModel.BookModel
	require.NoError(t, db.Preload("Authors").Preload("Genres").Preload("Instances").
		First(&got, "book_id = ?", book.BookID).Error)
	require.Len(t, got.Authors, 1)
	require.Len(t, got.Genres, 1)
	require.Len(t, got.Instances, 3)
}

func TestCreateBookDefaultsToOneCopy(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)

	book := bookModel.BookModel{BookTitle: "Lone Copy"}
	require.NoError(t, svc.CreateBookWithInstances(&book, nil, nil, nil))
	require.Equal(t, 1, book.BookTotalCopies)
	require.Len(t, book.Instances, 1)
	require.Equal(t, bookModel.ConditionGood, book.Instances[0].BookInstanceCondition)
}

func TestAddInstanceBumpsCounters(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)

	book := bookModel.BookModel{BookTitle: "Growing Holdings"}
	require.NoError(t, svc.CreateBookWithInstances(&book, nil, nil, []string{bookModel.ConditionGood}))

	inst, err := svc.AddInstance(book.BookID, bookModel.ConditionDamaged)
	require.NoError(t, err)
	require.Equal(t, bookModel.ConditionDamaged, inst.BookInstanceCondition)

	var got bookModel.BookModel
	require.NoError(t, db.First(&got, "book_id = ?", book.BookID).Error)
	require.Equal(t, 2, got.BookTotalCopies)
	require.Equal(t, 2, got.BookAvailableCopies)
}

func TestSetCopyCountsClampsAvailable(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)

	book := bookModel.BookModel{BookTitle: "Shrinking"}
	conditions := []string{bookModel.ConditionGood, bookModel.ConditionGood, bookModel.ConditionGood}
	require.NoError(t, svc.CreateBookWithInstances(&book, nil, nil, conditions))

	got, err := svc.SetCopyCounts(book.BookID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, got.BookTotalCopies)
	require.Equal(t, 1, got.BookAvailableCopies)

	_, err = svc.SetCopyCounts(book.BookID, 0)
	require.Error(t, err)
}
