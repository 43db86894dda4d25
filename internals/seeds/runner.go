package seeds

import "log"

// Counts parameterizes one seed run.
type Counts struct {
	Authors    int
	Genres     int
	Books      int
	Users      int
	Borrowings int
}

func DefaultCounts() Counts {
	return Counts{
		Authors:    25,
		Genres:     12,
		Books:      60,
		Users:      30,
		Borrowings: 40,
	}
}

// RunAll seeds everything in dependency order: authors and genres before
// books, users and books before borrowings.
func (s *Seeder) RunAll(c Counts) {
	s.SeedAuthors(c.Authors)
	s.SeedGenres(c.Genres)
	s.SeedUsers(c.Users)
	s.SeedBooksAndInstances(c.Books)
	s.SeedBorrowings(c.Borrowings)

	log.Println("✅ Library seed complete.")
}
