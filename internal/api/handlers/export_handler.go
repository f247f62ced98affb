package handlers

import (
	"fmt"
	"time"

	"leftknovers-backend/domain"
	"leftknovers-backend/internal/api/presenters"
	"leftknovers-backend/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type (
	ExportHandler interface {
		ExportData(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
	}
)

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandler{
		exportService: exportService,
	}
}

func (h *exportHandler) ExportData(c *fiber.Ctx) error {
	user := authUser(c)
	date := time.Now().Format("2006-01-02")

	if c.Query("format") == "csv" {
		csv, err := h.exportService.ExportCSV(c.Context(), user)
		if err != nil {
			return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedExport, err)
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="leftknovers-export-%s.csv"`, date))
		return c.SendString(csv)
	}

	res, err := h.exportService.ExportJSON(c.Context(), user)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedExport, err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="leftknovers-export-%s.json"`, date))
	return c.Status(fiber.StatusOK).JSON(res)
}
