package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/leandrobouwier/Brev.ly/dto"
	"github.com/leandrobouwier/Brev.ly/repo"
	"github.com/leandrobouwier/Brev.ly/report"
	"github.com/leandrobouwier/Brev.ly/service"
	"github.com/leandrobouwier/Brev.ly/util"
)

func (a *API) createLink(c *fiber.Ctx) error {
	requestID := util.GenUUID()

	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		a.logger.Error("CannotParseBody", zap.String("id", requestID), zap.Int("code", 400), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cannot parse body"})
	}

	a.logger.Info("CreateLink", zap.String("id", requestID), zap.String("code", req.Code), zap.String("url", req.Url))

	link, err := a.service.Create(c.Context(), req.Code, req.Url)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUrl), errors.Is(err, service.ErrInvalidCode):
			a.logger.Info("CreateLinkRejected", zap.String("id", requestID), zap.Int("code", 422), zap.String("reason", err.Error()))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, repo.ErrDuplicateCode):
			a.logger.Info("CreateLinkDuplicate", zap.String("id", requestID), zap.Int("code", 400), zap.String("shortCode", req.Code))
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "this short link already exists"})
		default:
			a.logger.Error("CannotCreateLink", zap.String("id", requestID), zap.Int("code", 500), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
		}
	}

	a.logger.Info("LinkCreated", zap.String("id", requestID), zap.Int64("linkId", link.ID), zap.String("shortCode", link.Code))
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (a *API) listLinks(c *fiber.Ctx) error {
	links, err := a.service.List(c.Context())
	if err != nil {
		a.logger.Error("CannotListLinks", zap.Int("code", 500), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
	}
	return c.JSON(links)
}

func (a *API) redirect(c *fiber.Ctx) error {
	code := c.Params("code")

	link, err := a.service.Resolve(c.Context(), code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "link not found"})
		}
		a.logger.Error("CannotResolveLink", zap.Int("code", 500), zap.String("shortCode", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
	}

	a.logger.Info("Redirect", zap.String("shortCode", code), zap.String("url", link.OriginalUrl), zap.Int64("clicks", link.Clicks))
	return c.Redirect(link.OriginalUrl, fiber.StatusFound)
}

func (a *API) deleteLink(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a row.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "link not found"})
	}

	if err := a.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "link not found"})
		}
		a.logger.Error("CannotDeleteLink", zap.Int("code", 500), zap.Int64("linkId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
	}

	a.logger.Info("LinkDeleted", zap.Int64("linkId", id))
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *API) exportMetrics(c *fiber.Ctx) error {
	requestID := util.GenUUID()

	links, err := a.service.List(c.Context())
	if err != nil {
		a.logger.Error("CannotListLinks", zap.String("id", requestID), zap.Int("code", 500), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
	}

	content := report.BuildCSV(links)

	result, err := a.target.Deliver(c.Context(), util.GenFileKey(), content)
	if err != nil {
		a.logger.Error("CannotDeliverReport", zap.String("id", requestID), zap.Int("code", 500), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "internal server error"})
	}

	if result.FileUrl != "" {
		a.logger.Info("ReportUploaded", zap.String("id", requestID), zap.Int("links", len(links)))
		return c.JSON(dto.ExportResponse{FileUrl: result.FileUrl})
	}

	a.logger.Info("ReportDownloaded", zap.String("id", requestID), zap.Int("links", len(links)))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="links-report.csv"`)
	return c.Send(result.Content)
}
