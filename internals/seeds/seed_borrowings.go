package seeds

import (
	"errors"
	"log"

	bookModel "pustakaku_backend/internals/features/library/books/model"
	borrowingService "pustakaku_backend/internals/features/library/borrowings/service"
	userModel "pustakaku_backend/internals/features/users/user/model"
)

// SeedBorrowings fabricates up to n checkout records against currently
// available copies, marking 55% of them returned to simulate history.
// Requires at least one user and one available instance; otherwise it reports
// and returns immediately. Each chosen copy leaves the candidate pool for the
// rest of the run (even if returned meanwhile), so one run never borrows the
// same copy twice; the loop gives up after 10*n attempts so a scarce pool
// cannot make it spin forever. Returns how many were created.
func (s *Seeder) SeedBorrowings(n int) int {
	var users []userModel.UserModel
	if err := s.DB.Find(&users).Error; err != nil {
		log.Printf("❌ Failed to load users: %v", err)
		return 0
	}
	if len(users) == 0 {
		log.Println("❌ No users found. Seed users first.")
		return 0
	}

	used := make(map[uint]bool)
	pool, err := s.loadAvailableInstances(used)
	if err != nil {
		log.Printf("❌ Failed to load available instances: %v", err)
		return 0
	}
	if len(pool) == 0 {
		log.Println("❌ No available book instances found. Seed books first.")
		return 0
	}

	now := s.now()
	created := 0
	tries := 0
	maxTries := n * 10

	for created < n && tries < maxTries {
		tries++

		if len(pool) == 0 {
			pool, err = s.loadAvailableInstances(used)
			if err != nil || len(pool) == 0 {
				break
			}
		}

		pick := s.Faker.Number(0, len(pool)-1)
		inst := pool[pick]
		borrower := users[s.Faker.Number(0, len(users)-1)]

		// drop the pick from the pool whatever happens next
		pool = append(pool[:pick], pool[pick+1:]...)
		used[inst.BookInstanceID] = true

		borrowDate := s.Faker.DateRange(now.AddDate(0, 0, -120), now)
		dueDate := borrowDate.AddDate(0, 0, s.Faker.Number(7, 21))

		b, err := s.Borrowings.CreateBorrowing(inst.BookInstanceID, borrower.ID, borrowDate, dueDate)
		if err != nil {
			if !errors.Is(err, borrowingService.ErrInstanceUnavailable) {
				log.Printf("❌ Failed to create borrowing: %v", err)
			}
			continue
		}

		if s.Faker.Number(1, 100) <= 55 {
			if _, err := s.Borrowings.MarkReturned(b.BorrowingID); err != nil {
				log.Printf("❌ Failed to mark borrowing %d returned: %v", b.BorrowingID, err)
			}
		}

		created++
	}

	log.Printf("✅ Created %d borrowing records.", created)
	return created
}

func (s *Seeder) loadAvailableInstances(used map[uint]bool) ([]bookModel.BookInstanceModel, error) {
	var rows []bookModel.BookInstanceModel
	if err := s.DB.Scopes(bookModel.ScopeAvailable).Find(&rows).Error; err != nil {
		return nil, err
	}
	pool := rows[:0]
	for _, r := range rows {
		if !used[r.BookInstanceID] {
			pool = append(pool, r)
		}
	}
	return pool, nil
}
