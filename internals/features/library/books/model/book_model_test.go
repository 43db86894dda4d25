package model

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&authorModel.AuthorModel{},
		&genreModel.GenreModel{},
		&BookModel{},
		&BookInstanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createBook(t *testing.T, db *gorm.DB, total, available int) *BookModel {
	t.Helper()
	b := &BookModel{
		BookTitle:           "The Test Catalog",
		BookTotalCopies:     total,
		BookAvailableCopies: available,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}
	return b
}

func TestBookClampsAvailableToTotalOnCreate(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 3, 5)
	if b.BookAvailableCopies != 3 {
		t.Fatalf("available = %d, want 3", b.BookAvailableCopies)
	}
}

func TestBookClampsAvailableWhenTotalShrinks(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 4, 4)

	b.BookTotalCopies = 2
	if err := db.Save(b).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	var got BookModel
	if err := db.First(&got, "book_id = ?", b.BookID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.BookAvailableCopies != 2 {
		t.Fatalf("available = %d, want 2", got.BookAvailableCopies)
	}
}

func TestBookRejectsNegativeAvailable(t *testing.T) {
	db := openTestDB(t)
	b := &BookModel{BookTitle: "Broken", BookTotalCopies: 1, BookAvailableCopies: -1}
	if err := db.Create(b).Error; err == nil {
		t.Fatal("expected error for negative available_copies")
	}
}

func TestBookRejectsZeroTotal(t *testing.T) {
	db := openTestDB(t)
	b := &BookModel{BookTitle: "Broken", BookTotalCopies: 0, BookAvailableCopies: 0}
	if err := db.Create(b).Error; err == nil {
		t.Fatal("expected error for total_copies < 1")
	}
}

func TestInventoryNumberSequence(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 3, 3)

	for i := 1; i <= 3; i++ {
		inst := BookInstanceModel{BookInstanceBookID: b.BookID, BookInstanceIsAvailable: true}
		if err := db.Create(&inst).Error; err != nil {
			t.Fatalf("create instance %d: %v", i, err)
		}
		want := fmt.Sprintf("%03d-%04d", b.BookID, i)
		if inst.BookInstanceInventoryNumber != want {
			t.Fatalf("inventory number = %q, want %q", inst.BookInstanceInventoryNumber, want)
		}
	}
}

func TestInventoryNumbersUniqueAcrossBooks(t *testing.T) {
	db := openTestDB(t)
	b1 := createBook(t, db, 2, 2)
	b2 := createBook(t, db, 2, 2)

	for _, b := range []*BookModel{b1, b2} {
		for i := 0; i < 2; i++ {
			inst := BookInstanceModel{BookInstanceBookID: b.BookID, BookInstanceIsAvailable: true}
			if err := db.Create(&inst).Error; err != nil {
				t.Fatalf("create instance: %v", err)
			}
		}
	}

	var numbers []string
	if err := db.Model(&BookInstanceModel{}).Pluck("book_instance_inventory_number", &numbers).Error; err != nil {
		t.Fatalf("pluck: %v", err)
	}
	seen := map[string]bool{}
	for _, n := range numbers {
		if seen[n] {
			t.Fatalf("duplicate inventory number %q", n)
		}
		seen[n] = true
	}
}

func TestInventoryNumberExplicitValueKept(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 1, 1)

	inst := BookInstanceModel{
		BookInstanceBookID:          b.BookID,
		BookInstanceInventoryNumber: "LIB-0042",
		BookInstanceIsAvailable:     true,
	}
	if err := db.Create(&inst).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.BookInstanceInventoryNumber != "LIB-0042" {
		t.Fatalf("inventory number overwritten: %q", inst.BookInstanceInventoryNumber)
	}
}

func TestInventoryNumberBadSuffixFailsLoudly(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 2, 2)

	first := BookInstanceModel{
		BookInstanceBookID:          b.BookID,
		BookInstanceInventoryNumber: "hand-edited",
		BookInstanceIsAvailable:     true,
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := BookInstanceModel{BookInstanceBookID: b.BookID, BookInstanceIsAvailable: true}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("expected error when prior inventory suffix is not numeric")
	}
}

func TestInstanceConditionValidated(t *testing.T) {
	db := openTestDB(t)
	b := createBook(t, db, 1, 1)

	inst := BookInstanceModel{
		BookInstanceBookID:    b.BookID,
		BookInstanceCondition: "pristine",
	}
	if err := db.Create(&inst).Error; err == nil {
		t.Fatal("expected error for unknown condition")
	}

	inst = BookInstanceModel{BookInstanceBookID: b.BookID}
	if err := db.Create(&inst).Error; err != nil {
		t.Fatalf("create with default condition: %v", err)
	}
	if inst.BookInstanceCondition != ConditionGood {
		t.Fatalf("condition = %q, want %q", inst.BookInstanceCondition, ConditionGood)
	}
}
