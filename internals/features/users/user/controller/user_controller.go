package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "pustakaku_backend/internals/features/users/user/dto"
	model "pustakaku_backend/internals/features/users/user/model"
	service "pustakaku_backend/internals/features/users/user/service"
	helper "pustakaku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Accounts *service.AccountService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Accounts: service.NewAccountService(db)}
}

var validate = validator.New()

// REGISTER - POST /api/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := h.Accounts.CreateBorrower(req.UserName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", dto.ToUserResponse(u))
}

// LIST - GET /api/users
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.UserModel{}).Order("user_name ASC")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.UserModel
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list users")
	}
	return helper.JsonList(c, "", dto.ToUserResponses(rows), helper.BuildPagination(paging, total))
}
