package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/library/authors/dto"
	model "pustakaku_backend/internals/features/library/authors/model"
	helper "pustakaku_backend/internals/helpers"
)

type AuthorController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/authors
// =========================================================
func (h *AuthorController) Create(c *fiber.Ctx) error {
	var req dto.AuthorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create author")
	}
	return helper.JsonCreated(c, "Author created", dto.ToAuthorResponse(m))
}

// =========================================================
// LIST - GET /api/authors
// =========================================================
func (h *AuthorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.AuthorModel{}).Scopes(model.ScopeOrdered)
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("lower(author_first_name) LIKE ? OR lower(author_last_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count authors")
	}

	var rows []model.AuthorModel
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list authors")
	}

	return helper.JsonList(c, "", dto.ToAuthorResponses(rows), helper.BuildPagination(paging, total))
}

// =========================================================
// DETAIL - GET /api/authors/:id
// =========================================================
func (h *AuthorController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.AuthorModel
	if err := h.DB.First(&m, "author_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Author not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch author")
	}
	return helper.JsonOK(c, "", dto.ToAuthorResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/authors/:id
// =========================================================
func (h *AuthorController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.AuthorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.AuthorModel
	if err := h.DB.First(&m, "author_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Author not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch author")
	}
	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update author")
	}
	return helper.JsonUpdated(c, "Author updated", dto.ToAuthorResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/authors/:id (soft)
// =========================================================
func (h *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&model.AuthorModel{}, "author_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete author")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Author not found")
	}
	return helper.JsonDeleted(c, "Author deleted", fiber.Map{"author_id": id})
}

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
