package seeds

import (
	"log"
	"time"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
)

// SeedAuthors creates n authors with fabricated biographies. Birth dates put
// the author at age 25-90 today; 20% get a death date within the last 20
// years. Returns how many rows were inserted.
func (s *Seeder) SeedAuthors(n int) int {
	now := s.now()
	created := 0

	for i := 0; i < n; i++ {
		birth := s.Faker.DateRange(now.AddDate(-90, 0, 0), now.AddDate(-25, 0, 0))

		var death *time.Time
		if s.Faker.Number(1, 100) <= 20 {
			d := s.Faker.DateRange(now.AddDate(-20, 0, 0), now)
			death = &d
		}

		a := authorModel.AuthorModel{
			AuthorFirstName:   s.Faker.FirstName(),
			AuthorLastName:    s.Faker.LastName(),
			AuthorBiography:   s.Faker.Paragraph(1, 3, 12, " "),
			AuthorDateOfBirth: &birth,
			AuthorDateOfDeath: death,
		}
		if err := s.DB.Create(&a).Error; err != nil {
			log.Printf("❌ Failed to insert author: %v", err)
			continue
		}
		created++
	}

	log.Printf("✅ Created %d authors.", created)
	return created
}
