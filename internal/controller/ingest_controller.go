package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/internal/pkg/serverutils"
	"ai-bankassist-be/internal/service"
	"ai-bankassist-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestionService service.IIngestionService
	uploadDir        string
}

func NewIngestController(ingestionService service.IIngestionService, uploadDir string) IIngestController {
	return &ingestController{
		ingestionService: ingestionService,
		uploadDir:        uploadDir,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingest/v1")
	h.Post("", c.Ingest)
}

func (c *ingestController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart form required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one file is required")
	}

	for _, file := range files {
		if !extract.SupportedExtension(file.Filename) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("unsupported file type: %s", filepath.Ext(file.Filename)))
		}
	}

	// Uploads land in a per-request temp dir that is removed regardless of
	// the ingestion outcome.
	tempDir := filepath.Join(c.uploadDir, uuid.NewString())
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	paths := make([]string, 0, len(files))
	for _, file := range files {
		dest := filepath.Join(tempDir, filepath.Base(file.Filename))
		if err := ctx.SaveFile(file, dest); err != nil {
			return err
		}
		paths = append(paths, dest)
	}

	res, err := c.ingestionService.IngestFiles(ctx.Context(), paths, service.IngestMeta{
		Tenant:     req.Tenant,
		DocType:    req.DocType,
		Department: req.Department,
		Country:    req.Country,
		Version:    req.Version,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest documents", res))
}
