package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/library/genres/dto"
	model "pustakaku_backend/internals/features/library/genres/model"
	helper "pustakaku_backend/internals/helpers"
)

type GenreController struct {
	DB *gorm.DB
}

var validate = validator.New()

// CREATE - POST /api/genres
// Genres are get-or-create by name: posting an existing name returns the
// existing row instead of a conflict.
func (h *GenreController) Create(c *fiber.Ctx) error {
	var req dto.GenreCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.GenreModel{GenreName: req.GenreName}
	res := h.DB.
		Where("genre_name = ?", req.GenreName).
		Attrs(model.GenreModel{GenreDescription: req.GenreDescription}).
		FirstOrCreate(&m)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create genre")
	}
	if res.RowsAffected == 0 {
		return helper.JsonOK(c, "Genre already exists", dto.ToGenreResponse(&m))
	}
	return helper.JsonCreated(c, "Genre created", dto.ToGenreResponse(&m))
}

// LIST - GET /api/genres
func (h *GenreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.GenreModel{}).Order("genre_name ASC")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count genres")
	}

	var rows []model.GenreModel
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list genres")
	}
	return helper.JsonList(c, "", dto.ToGenreResponses(rows), helper.BuildPagination(paging, total))
}

// DETAIL - GET /api/genres/:id
func (h *GenreController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.GenreModel
	if err := h.DB.First(&m, "genre_id = ?", uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch genre")
	}
	return helper.JsonOK(c, "", dto.ToGenreResponse(&m))
}

// DELETE - DELETE /api/genres/:id (soft)
func (h *GenreController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&model.GenreModel{}, "genre_id = ?", uint(id))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete genre")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}
	return helper.JsonDeleted(c, "Genre deleted", fiber.Map{"genre_id": uint(id)})
}
