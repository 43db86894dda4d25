package seeds

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "pustakaku_backend/internals/databases"
	authorModel "pustakaku_backend/internals/features/library/authors/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	borrowingModel "pustakaku_backend/internals/features/library/borrowings/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
)

func newTestSeeder(t *testing.T, seed uint64) (*Seeder, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := NewSeeder(db, seed)
	return s, db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSeedAuthors(t *testing.T) {
	s, db := newTestSeeder(t, 1)
	created := s.SeedAuthors(10)
	if created != 10 {
		t.Fatalf("created = %d, want 10", created)
	}
	if n := count(t, db, &authorModel.AuthorModel{}); n != 10 {
		t.Fatalf("author rows = %d, want 10", n)
	}
}

func TestSeedGenresIsIdempotent(t *testing.T) {
	s, db := newTestSeeder(t, 2)

	first := s.SeedGenres(16)
	if first != 16 {
		t.Fatalf("first run created = %d, want 16", first)
	}
	second := s.SeedGenres(16)
	if second != 0 {
		t.Fatalf("second run created = %d, want 0", second)
	}
	if n := count(t, db, &genreModel.GenreModel{}); n != 16 {
		t.Fatalf("genre rows = %d, want 16", n)
	}
}

func TestSeedBooksRequiresAuthors(t *testing.T) {
	s, db := newTestSeeder(t, 3)

	books, instances := s.SeedBooksAndInstances(5)
	if books != 0 || instances != 0 {
		t.Fatalf("seeded %d books / %d instances without authors", books, instances)
	}
	if n := count(t, db, &bookModel.BookModel{}); n != 0 {
		t.Fatalf("book rows = %d, want 0", n)
	}
}

func TestSeedBooksAndInstances(t *testing.T) {
	s, db := newTestSeeder(t, 4)
	s.SeedAuthors(3)
	s.SeedGenres(5)

	books, instances := s.SeedBooksAndInstances(5)
	if books != 5 {
		t.Fatalf("books = %d, want 5", books)
	}
	if instances < 5 || instances > 30 {
		t.Fatalf("instances = %d, want between 5 and 30", instances)
	}

	var all []bookModel.BookModel
	if err := db.Preload("Instances").Find(&all).Error; err != nil {
		t.Fatalf("load books: %v", err)
	}
	for _, b := range all {
		if b.BookTotalCopies != len(b.Instances) {
			t.Fatalf("book %d: total_copies = %d but %d instances", b.BookID, b.BookTotalCopies, len(b.Instances))
		}
		if b.BookAvailableCopies != b.BookTotalCopies {
			t.Fatalf("book %d: available = %d, want %d", b.BookID, b.BookAvailableCopies, b.BookTotalCopies)
		}
	}
}

func TestSeedUsers(t *testing.T) {
	s, db := newTestSeeder(t, 5)
	created := s.SeedUsers(5)
	if created != 5 {
		t.Fatalf("created = %d, want 5", created)
	}
	if n := count(t, db, &userModel.UserModel{}); n != 5 {
		t.Fatalf("user rows = %d, want 5", n)
	}
}

func TestSeedBorrowingsRequiresUsers(t *testing.T) {
	s, _ := newTestSeeder(t, 6)
	s.SeedAuthors(1)
	s.SeedBooksAndInstances(1)

	if created := s.SeedBorrowings(5); created != 0 {
		t.Fatalf("created = %d, want 0 without users", created)
	}
}

// A request larger than the pool of copies must settle for the pool and stop.
func TestSeedBorrowingsBoundedByAvailableCopies(t *testing.T) {
	s, db := newTestSeeder(t, 7)
	s.SeedUsers(1)

	book := bookModel.BookModel{BookTitle: "Scarce", BookTotalCopies: 2, BookAvailableCopies: 2}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}
	for i := 0; i < 2; i++ {
		inst := bookModel.BookInstanceModel{BookInstanceBookID: book.BookID, BookInstanceIsAvailable: true}
		if err := db.Create(&inst).Error; err != nil {
			t.Fatalf("create instance: %v", err)
		}
	}

	created := s.SeedBorrowings(5)
	if created != 2 {
		t.Fatalf("created = %d, want 2", created)
	}
	if n := count(t, db, &borrowingModel.BorrowingModel{}); n != 2 {
		t.Fatalf("borrowing rows = %d, want 2", n)
	}
}

func TestSeedBorrowingsKeepsCountersConsistent(t *testing.T) {
	s, db := newTestSeeder(t, 8)
	s.SeedAuthors(3)
	s.SeedGenres(4)
	s.SeedBooksAndInstances(6)
	s.SeedUsers(3)
	s.SeedBorrowings(10)

	var all []bookModel.BookModel
	if err := db.Find(&all).Error; err != nil {
		t.Fatalf("load books: %v", err)
	}
	for _, b := range all {
		var avail int64
		err := db.Model(&bookModel.BookInstanceModel{}).
			Where("book_instance_book_id = ? AND book_instance_is_available = ?", b.BookID, true).
			Count(&avail).Error
		if err != nil {
			t.Fatalf("count instances: %v", err)
		}
		if int64(b.BookAvailableCopies) != avail {
			t.Fatalf("book %d: available_copies = %d but %d available instances", b.BookID, b.BookAvailableCopies, avail)
		}
	}

	var open int64
	if err := db.Scopes(borrowingModel.ScopeOpen).Model(&borrowingModel.BorrowingModel{}).Count(&open).Error; err != nil {
		t.Fatalf("count open: %v", err)
	}
	var unavailable int64
	if err := db.Model(&bookModel.BookInstanceModel{}).
		Where("book_instance_is_available = ?", false).Count(&unavailable).Error; err != nil {
		t.Fatalf("count unavailable: %v", err)
	}
	if open != unavailable {
		t.Fatalf("open borrowings = %d but %d unavailable instances", open, unavailable)
	}
}

func TestSeedReproducibleFromSameSeed(t *testing.T) {
	names := func(seed uint64) []string {
		s, db := newTestSeeder(t, seed)
		s.SeedAuthors(4)
		var authors []authorModel.AuthorModel
		if err := db.Scopes(authorModel.ScopeOrdered).Find(&authors).Error; err != nil {
			t.Fatalf("load authors: %v", err)
		}
		out := make([]string, 0, len(authors))
		for _, a := range authors {
			out = append(out, a.FullName())
		}
		return out
	}

	a, b := names(42), names(42)
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run mismatch at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
