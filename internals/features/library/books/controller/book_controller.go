package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorModel "pustakaku_backend/internals/features/library/authors/model"
	dto "pustakaku_backend/internals/features/library/books/dto"
	model "pustakaku_backend/internals/features/library/books/model"
	service "pustakaku_backend/internals/features/library/books/service"
	genreModel "pustakaku_backend/internals/features/library/genres/model"
	helper "pustakaku_backend/internals/helpers"
)

type BookController struct {
	DB      *gorm.DB
	Catalog *service.CatalogService
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db, Catalog: service.NewCatalogService(db)}
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/books
// Creates the book plus its physical copies in one go.
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var authors []authorModel.AuthorModel
	if err := h.DB.Find(&authors, "author_id IN ?", req.AuthorIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch authors")
	}
	if len(authors) != len(req.AuthorIDs) {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more author_ids do not exist")
	}

	var genres []genreModel.GenreModel
	if len(req.GenreIDs) > 0 {
		if err := h.DB.Find(&genres, "genre_id IN ?", req.GenreIDs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch genres")
		}
		if len(genres) != len(req.GenreIDs) {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more genre_ids do not exist")
		}
	}

	conditions := make([]string, req.Copies)
	for i := range conditions {
		conditions[i] = req.Condition
	}

	m := req.ToModel()
	if err := h.Catalog.CreateBookWithInstances(m, authors, genres, conditions); err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "ISBN already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create book")
	}
	m.Authors = authors
	m.Genres = genres
	return helper.JsonCreated(c, "Book created", dto.ToBookResponse(m))
}

// =========================================================
// LIST - GET /api/books
// =========================================================
func (h *BookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.BookModel{}).Scopes(model.ScopeOrdered)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("lower(book_title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if c.QueryBool("available", false) {
		q = q.Where("book_available_copies > 0")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count books")
	}

	var rows []model.BookModel
	if err := q.Preload("Authors").Preload("Genres").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list books")
	}
	return helper.JsonList(c, "", dto.ToBookResponses(rows), helper.BuildPagination(paging, total))
}

// =========================================================
// DETAIL - GET /api/books/:id (with copies)
// =========================================================
func (h *BookController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.BookModel
	if err := h.DB.Preload("Authors").Preload("Genres").Preload("Instances").
		First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	return helper.JsonOK(c, "", dto.ToBookResponse(&m))
}

// =========================================================
// UPDATE COPIES - PATCH /api/books/:id/copies
// Shrinking total clamps available down with it.
// =========================================================
func (h *BookController) UpdateCopies(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.BookCopiesUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.Catalog.SetCopyCounts(id, req.BookTotalCopies)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update copy counts")
	}
	return helper.JsonUpdated(c, "Copy counts updated", dto.ToBookResponse(m))
}

// =========================================================
// ADD COPY - POST /api/books/:id/instances
// =========================================================
func (h *BookController) AddInstance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.BookInstanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Condition == "" {
		req.Condition = model.ConditionGood
	}

	inst, err := h.Catalog.AddInstance(id, req.Condition)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add copy")
	}
	return helper.JsonCreated(c, "Copy added", dto.ToBookInstanceResponse(inst))
}

// =========================================================
// LIST COPIES - GET /api/books/:id/instances
// =========================================================
func (h *BookController) ListInstances(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	q := h.DB.Model(&model.BookInstanceModel{}).
		Where("book_instance_book_id = ?", id).
		Order("book_instance_inventory_number ASC")
	if c.QueryBool("available", false) {
		q = q.Scopes(model.ScopeAvailable)
	}

	var rows []model.BookInstanceModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list copies")
	}
	return helper.JsonOK(c, "", dto.ToBookInstanceResponses(rows))
}

// =========================================================
// DELETE - DELETE /api/books/:id (soft)
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var open int64
	if err := h.DB.Table("borrowings").
		Joins("JOIN book_instances ON book_instances.book_instance_id = borrowings.borrowing_book_instance_id").
		Where("book_instances.book_instance_book_id = ? AND borrowings.borrowing_is_returned = ?", id, false).
		Count(&open).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check open borrowings")
	}
	if open > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Book has copies still checked out")
	}

	res := h.DB.Delete(&model.BookModel{}, "book_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete book")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
	}
	return helper.JsonDeleted(c, "Book deleted", fiber.Map{"book_id": id})
}

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
