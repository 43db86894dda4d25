package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"pustakaku_backend/internals/configs"
	database "pustakaku_backend/internals/databases"
	"pustakaku_backend/internals/seeds"
)

func main() {
	counts := seeds.DefaultCounts()
	var seed uint64

	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed fake data for the library catalog",
		Run: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
			database.ConnectDB()
			database.TunePool()

			if err := database.AutoMigrate(database.DB); err != nil {
				log.Fatalf("❌ Migration failed: %v", err)
			}

			s := seeds.NewSeeder(database.DB, seed)
			s.Password = configs.SeedPassword
			s.RunAll(counts)
		},
	}

	root.Flags().IntVar(&counts.Authors, "authors", counts.Authors, "number of authors to create")
	root.Flags().IntVar(&counts.Genres, "genres", counts.Genres, "number of genres to create")
	root.Flags().IntVar(&counts.Books, "books", counts.Books, "number of books to create")
	root.Flags().IntVar(&counts.Users, "users", counts.Users, "number of borrower accounts to create")
	root.Flags().IntVar(&counts.Borrowings, "borrowings", counts.Borrowings, "number of borrowings to create")
	root.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed for reproducible runs (0 = random)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
