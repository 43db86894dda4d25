package seeds

import (
	"log"

	genreModel "pustakaku_backend/internals/features/library/genres/model"
)

// Canonical genre labels the seeder draws from.
var genrePool = []string{
	"Fiction", "Non-Fiction", "Fantasy", "Sci-Fi", "Mystery", "Thriller",
	"Romance", "History", "Biography", "Self-Help", "Technology", "Science",
	"Philosophy", "Psychology", "Horror", "Comics",
}

// SeedGenres draws up to n distinct names from the fixed pool, get-or-create
// by name so reruns reuse existing rows. Returns how many were newly created.
func (s *Seeder) SeedGenres(n int) int {
	pool := make([]string, len(genrePool))
	copy(pool, genrePool)
	s.Faker.ShuffleStrings(pool)

	if n > len(pool) {
		n = len(pool)
	}

	created := 0
	for _, name := range pool[:n] {
		g := genreModel.GenreModel{GenreName: name}
		res := s.DB.
			Where("genre_name = ?", name).
			Attrs(genreModel.GenreModel{GenreDescription: s.Faker.Sentence(8)}).
			FirstOrCreate(&g)
		if res.Error != nil {
			log.Printf("❌ Failed to insert genre %q: %v", name, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			created++
		}
	}

	log.Printf("✅ Created %d genres.", created)
	return created
}
