package seeds

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	bookService "pustakaku_backend/internals/features/library/books/service"
	borrowingService "pustakaku_backend/internals/features/library/borrowings/service"
	userService "pustakaku_backend/internals/features/users/user/service"
)

// Seeder fabricates development fixtures. All randomness flows through the
// injected Faker so a run is reproducible from its seed value.
type Seeder struct {
	DB    *gorm.DB
	Faker *gofakeit.Faker

	// shared password for every seeded borrower account
	Password string

	Catalog    *bookService.CatalogService
	Borrowings *borrowingService.BorrowingService
	Accounts   *userService.AccountService

	now func() time.Time
}

// NewSeeder builds a seeder over db. Pass seed=0 for a random source.
func NewSeeder(db *gorm.DB, seed uint64) *Seeder {
	return &Seeder{
		DB:         db,
		Faker:      gofakeit.New(seed),
		Password:   "password123",
		Catalog:    bookService.NewCatalogService(db),
		Borrowings: borrowingService.NewBorrowingService(db),
		Accounts:   userService.NewAccountService(db),
		now:        time.Now,
	}
}
