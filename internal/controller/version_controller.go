package controller

import (
	"nota-be/internal/dto"
	"nota-be/internal/pkg/serverutils"
	"nota-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVersionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type versionController struct {
	versionService service.IVersionService
}

func NewVersionController(versionService service.IVersionService) IVersionController {
	return &versionController{
		versionService: versionService,
	}
}

func (c *versionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1/:id/versions")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Post(":versionId/restore", c.Restore)
	h.Delete(":versionId", c.Delete)
}

func (c *versionController) Create(ctx *fiber.Ctx) error {
	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.CreateVersionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.DocumentId = documentId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.versionService.Snapshot(ctx.Context(), documentId, req.Name)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create version", res))
}

func (c *versionController) List(ctx *fiber.Ctx) error {
	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.versionService.ListVersions(ctx.Context(), documentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list versions", res))
}

func (c *versionController) Restore(ctx *fiber.Ctx) error {
	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}
	versionId, err := uuid.Parse(ctx.Params("versionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid version id")
	}

	if err := c.versionService.Restore(ctx.Context(), documentId, versionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore version", dto.RestoreVersionResponse{
		DocumentId: documentId,
		VersionId:  versionId,
	}))
}

func (c *versionController) Delete(ctx *fiber.Ctx) error {
	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}
	versionId, err := uuid.Parse(ctx.Params("versionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid version id")
	}

	if err := c.versionService.DeleteVersion(ctx.Context(), documentId, versionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete version", nil))
}
