package seeds

import (
	"errors"
	"fmt"
	"log"
	"strings"

	userService "pustakaku_backend/internals/features/users/user/service"
)

// SeedUsers creates n borrower accounts with generated usernames/emails and
// the seeder's shared password. Returns how many were inserted.
func (s *Seeder) SeedUsers(n int) int {
	created := 0

	for i := 0; i < n; i++ {
		// numeric suffix keeps generated names collision-free within a run
		username := fmt.Sprintf("%s%02d", strings.ToLower(s.Faker.Username()), i)
		email := fmt.Sprintf("%s@%s", username, s.Faker.DomainName())

		_, err := s.Accounts.CreateBorrower(username, email, s.Password)
		if err != nil {
			if errors.Is(err, userService.ErrDuplicateAccount) {
				log.Printf("ℹ️ User %q already exists, skipped.", username)
				continue
			}
			log.Printf("❌ Failed to insert user %q: %v", username, err)
			continue
		}
		created++
	}

	log.Printf("✅ Created %d users (borrowers).", created)
	return created
}
