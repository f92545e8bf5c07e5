package controller

import (
	"nota-be/internal/dto"
	"nota-be/internal/pkg/serverutils"
	"nota-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFavoriteBlockController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type favoriteBlockController struct {
	favoriteBlockService service.IFavoriteBlockService
}

func NewFavoriteBlockController(favoriteBlockService service.IFavoriteBlockService) IFavoriteBlockController {
	return &favoriteBlockController{
		favoriteBlockService: favoriteBlockService,
	}
}

func (c *favoriteBlockController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorite-block/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *favoriteBlockController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFavoriteBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.favoriteBlockService.CreateFromBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create favorite block", res))
}

func (c *favoriteBlockController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")

	res, err := c.favoriteBlockService.List(ctx.Context(), category)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list favorite blocks", res))
}

func (c *favoriteBlockController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid favorite block id")
	}

	if err := c.favoriteBlockService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete favorite block", nil))
}
