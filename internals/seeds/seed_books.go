package seeds

import (
	"log"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

// SeedBooksAndInstances creates n books, each with 1-6 physical copies in
// random condition, 1-3 authors and (85% of the time) 1-3 genres. Requires at
// least one author to exist; otherwise it reports and returns immediately.
// Returns how many books and instances were inserted.
func (s *Seeder) SeedBooksAndInstances(n int) (books int, instances int) {
	var authors []authorModel.AuthorModel
	if err := s.DB.Find(&authors).Error; err != nil {
		log.Printf("❌ Failed to load authors: %v", err)
		return 0, 0
	}
	if len(authors) == 0 {
		log.Println("❌ No authors found. Seed authors first.")
		return 0, 0
	}

	var genres []genreModel.GenreModel
	if err := s.DB.Find(&genres).Error; err != nil {
		log.Printf("❌ Failed to load genres: %v", err)
		return 0, 0
	}

	for i := 0; i < n; i++ {
		copies := s.Faker.Number(1, 6)
		conditions := make([]string, copies)
		for j := range conditions {
			conditions[j] = s.Faker.RandomString(bookModel.AllConditions)
		}

		isbn := s.fakeISBN13()
		year := s.Faker.Number(1980, 2025)
		book := bookModel.BookModel{
			BookTitle:           s.Faker.BookTitle(),
			BookISBN:            &isbn,
			BookPublicationYear: &year,
			BookDescription:     s.Faker.Paragraph(1, 4, 10, " "),
		}

		pickedAuthors := sampleAuthors(s, authors)
		var pickedGenres []genreModel.GenreModel
		if len(genres) > 0 && s.Faker.Number(1, 100) <= 85 {
			pickedGenres = sampleGenres(s, genres)
		}

		if err := s.Catalog.CreateBookWithInstances(&book, pickedAuthors, pickedGenres, conditions); err != nil {
			log.Printf("❌ Failed to insert book %q: %v", book.BookTitle, err)
			continue
		}
		books++
		instances += copies
	}

	log.Printf("✅ Created %d books.", books)
	log.Printf("✅ Created %d book instances.", instances)
	return books, instances
}

// fakeISBN13 builds a syntactically valid ISBN-13 in the 978 prefix.
func (s *Seeder) fakeISBN13() string {
	digits := "978" + s.Faker.DigitN(9)
	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	return digits + string(rune('0'+check))
}

func sampleAuthors(s *Seeder, pool []authorModel.AuthorModel) []authorModel.AuthorModel {
	k := s.Faker.Number(1, min(3, len(pool)))
	idx := samplePerm(s, len(pool), k)
	out := make([]authorModel.AuthorModel, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func sampleGenres(s *Seeder, pool []genreModel.GenreModel) []genreModel.GenreModel {
	k := s.Faker.Number(1, min(3, len(pool)))
	idx := samplePerm(s, len(pool), k)
	out := make([]genreModel.GenreModel, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

// samplePerm returns k distinct indices in [0, n).
func samplePerm(s *Seeder, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	s.Faker.ShuffleInts(idx)
	if k > n {
		k = n
	}
	return idx[:k]
}
