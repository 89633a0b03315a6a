package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/nexus-api/internal/api/metrics"
	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// DocumentHandler handles project document uploads and listings.
type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Upload handles POST /api/documents/:projectId. Admin or Project Lead.
// The file arrives as the multipart form field "document".
//
// @Summary      Upload a document for a project
// @Tags         documents
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Param        document   formData  file    true  "File to upload"
// @Success      201        {object}  documentResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Router       /api/documents/{projectId} [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing document file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable document file")
	}
	defer file.Close()

	doc, err := h.documentService.Upload(c.Request().Context(), ports.UploadDocumentInput{
		ProjectID:  c.Param("projectId"),
		UploadedBy: userID,
		FileName:   fileHeader.Filename,
		Content:    file,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// List handles GET /api/documents/:projectId. The read is resource-gated:
// Admin or a current member of the project's team set.
//
// @Summary      List a project's documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {array}   documentResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/documents/{projectId} [get]
func (h *DocumentHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	docs, err := h.documentService.ListProjectDocuments(c.Request().Context(), ports.ListDocumentsInput{
		ProjectID:     c.Param("projectId"),
		RequesterID:   userID,
		RequesterRole: role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "project not found")
		case errors.Is(err, domain.ErrForbidden):
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
		return err
	}

	return c.JSON(http.StatusOK, toDocumentResponses(docs))
}
