package controller

import (
	"strings"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntentController interface {
	RegisterRoutes(r fiber.Router)
	Detect(ctx *fiber.Ctx) error
	UnderstandAndOpen(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
}

type intentController struct {
	intentService service.IIntentService
}

func NewIntentController(intentService service.IIntentService) IIntentController {
	return &intentController{
		intentService: intentService,
	}
}

func (c *intentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/intent/v1")
	h.Post("detect", c.Detect)
	h.Post("understand-and-open", c.UnderstandAndOpen)
	h.Post("simulate", c.Simulate)
}

func (c *intentController) Detect(ctx *fiber.Ctx) error {
	var req dto.DetectIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Utterance = strings.TrimSpace(req.Utterance)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.intentService.Detect(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success detect intent", res))
}

func (c *intentController) UnderstandAndOpen(ctx *fiber.Ctx) error {
	var req dto.UnderstandAndOpenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Utterance = strings.TrimSpace(req.Utterance)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Pipeline failures are part of the response contract, not HTTP errors.
	res, err := c.intentService.UnderstandAndOpen(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success understand utterance", res))
}

func (c *intentController) Simulate(ctx *fiber.Ctx) error {
	var req dto.SimulateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.intentService.Simulate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success simulate utterances", res))
}
