package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/networth_dashboard/internal/core/ports/services"
	"github.com/SscSPs/networth_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportBytes bounds the size of an uploaded bundle.
const maxImportBytes = 10 << 20

// transferHandler serves data export and import.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := &transferHandler{transferService: transferService}

	rg.GET("/export", h.exportData)
	rg.POST("/import", h.importData)
}

// exportData godoc
// @Summary Export all data
// @Description Downloads the profile, accounts and events as a version-1 bundle.
// @Tags transfer
// @Produce json
// @Success 200 {object} dto.Bundle
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/export [get]
func (h *transferHandler) exportData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bundle, err := h.transferService.Export(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found", "Failed to export data")
		return
	}

	filename := fmt.Sprintf("networth-export-%s.json", bundle.ExportedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.JSON(http.StatusOK, bundle)
}

// importData godoc
// @Summary Import a bundle
// @Description Replaces every account and event with the bundle's content. Accounts that fail validation are skipped and reported.
// @Tags transfer
// @Accept json
// @Produce json
// @Param bundle body dto.Bundle true "Export bundle"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ErrorResponse "Malformed bundle or unsupported version"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/import [post]
func (h *transferHandler) importData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	raw, err := c.GetRawData()
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to read import body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	result, err := h.transferService.Import(c.Request.Context(), userID, raw)
	if err != nil {
		respondError(c, err, "User not found", "Failed to import data")
		return
	}
	c.JSON(http.StatusOK, result)
}
