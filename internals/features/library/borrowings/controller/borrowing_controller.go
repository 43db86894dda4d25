package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/library/borrowings/dto"
	model "pustakaku_backend/internals/features/library/borrowings/model"
	service "pustakaku_backend/internals/features/library/borrowings/service"
	helper "pustakaku_backend/internals/helpers"
)

type BorrowingController struct {
	DB      *gorm.DB
	Service *service.BorrowingService
}

func NewBorrowingController(db *gorm.DB) *BorrowingController {
	return &BorrowingController{DB: db, Service: service.NewBorrowingService(db)}
}

var validate = validator.New()

// =========================================================
// CHECKOUT - POST /api/borrowings
// =========================================================
func (h *BorrowingController) Checkout(c *fiber.Ctx) error {
	var req dto.BorrowingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	borrowerID, borrowDate, dueDate, err := req.Resolve(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid borrower_id")
	}
	if !dueDate.After(borrowDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be after borrow_date")
	}

	b, err := h.Service.CreateBorrowing(req.BookInstanceID, borrowerID, borrowDate, dueDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInstanceUnavailable):
			return helper.JsonError(c, fiber.StatusConflict, "This copy is not available")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Copy not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create borrowing")
		}
	}
	return helper.JsonCreated(c, "Borrowing created", dto.ToBorrowingResponse(b))
}

// =========================================================
// RETURN - POST /api/borrowings/:id/return (idempotent)
// =========================================================
func (h *BorrowingController) Return(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	b, err := h.Service.MarkReturned(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Borrowing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark returned")
	}
	return helper.JsonUpdated(c, "Borrowing returned", dto.ToBorrowingResponse(b))
}

// =========================================================
// LIST - GET /api/borrowings
// =========================================================
func (h *BorrowingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.BorrowingModel{}).Order("borrowing_borrow_date DESC")
	if c.QueryBool("open", false) {
		q = q.Scopes(model.ScopeOpen)
	}
	if s := strings.TrimSpace(c.Query("borrower_id")); s != "" {
		q = q.Where("borrowing_borrower_id = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count borrowings")
	}

	var rows []model.BorrowingModel
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list borrowings")
	}
	return helper.JsonList(c, "", dto.ToBorrowingResponses(rows), helper.BuildPagination(paging, total))
}

// =========================================================
// DETAIL - GET /api/borrowings/:id
// =========================================================
func (h *BorrowingController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.BorrowingModel
	if err := h.DB.First(&m, "borrowing_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Borrowing not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch borrowing")
	}
	return helper.JsonOK(c, "", dto.ToBorrowingResponse(&m))
}

func parseID(c *fiber.Ctx) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
