package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorController "pustakaku_backend/internals/features/library/authors/controller"
	bookController "pustakaku_backend/internals/features/library/books/controller"
	borrowingController "pustakaku_backend/internals/features/library/borrowings/controller"
	genreController "pustakaku_backend/internals/features/library/genres/controller"
	"pustakaku_backend/internals/middlewares"
)

func LibraryRoutes(api fiber.Router, db *gorm.DB) {
	authors := &authorController.AuthorController{DB: db}
	a := api.Group("/authors")
	a.Post("/", authors.Create)
	a.Get("/", authors.List)
	a.Get("/:id", authors.GetByID)
	a.Put("/:id", authors.Update)
	a.Delete("/:id", authors.Delete)

	genres := &genreController.GenreController{DB: db}
	g := api.Group("/genres")
	g.Post("/", genres.Create)
	g.Get("/", genres.List)
	g.Get("/:id", genres.GetByID)
	g.Delete("/:id", genres.Delete)

	books := bookController.NewBookController(db)
	b := api.Group("/books")
	b.Post("/", books.Create)
	b.Get("/", books.List)
	b.Get("/:id", books.GetByID)
	b.Patch("/:id/copies", books.UpdateCopies)
	b.Post("/:id/instances", books.AddInstance)
	b.Get("/:id/instances", books.ListInstances)
	b.Delete("/:id", books.Delete)

	borrowings := borrowingController.NewBorrowingController(db)
	br := api.Group("/borrowings")
	br.Post("/", middlewares.CheckoutRateLimiter(), borrowings.Checkout)
	br.Post("/:id/return", middlewares.CheckoutRateLimiter(), borrowings.Return)
	br.Get("/", borrowings.List)
	br.Get("/:id", borrowings.GetByID)
}
