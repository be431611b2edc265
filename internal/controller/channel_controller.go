package controller

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChannelController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type channelController struct {
	channelService service.IChannelService
}

func NewChannelController(channelService service.IChannelService) IChannelController {
	return &channelController{
		channelService: channelService,
	}
}

func (c *channelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/channels/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *channelController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.channelService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "channel not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show channel", res))
}

func (c *channelController) List(ctx *fiber.Ctx) error {
	var req dto.ListChannelsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.channelService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list channels", res))
}
