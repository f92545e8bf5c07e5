package controller

import (
	"nota-be/internal/dto"
	"nota-be/internal/pkg/serverutils"
	"nota-be/internal/service"
	"nota-be/pkg/blocktree"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBlockController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type blockController struct {
	blockService service.IBlockService
}

func NewBlockController(blockService service.IBlockService) IBlockController {
	return &blockController{
		blockService: blockService,
	}
}

func (c *blockController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/block/v1")
	h.Put("", c.Save)
	h.Get(":type/:id", c.Show)
	h.Delete(":type/:id", c.Delete)
}

func (c *blockController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.blockService.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save block", res))
}

func (c *blockController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid block id")
	}
	tag := blocktree.BlockType(ctx.Params("type"))

	res, err := c.blockService.Get(ctx.Context(), id, tag)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show block", res))
}

func (c *blockController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid block id")
	}
	tag := blocktree.BlockType(ctx.Params("type"))

	documentId, err := uuid.Parse(ctx.Query("document_id", ""))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document_id")
	}

	if err := c.blockService.Delete(ctx.Context(), id, tag, documentId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete block", nil))
}
