package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/services"
	"voyagemind/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func (ec *ExportController) ExportPDFHandler(c *gin.Context) {
	var req request_models.ExportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	export, err := ec.exportService.BuildPDFStub(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, export)
}

func (ec *ExportController) ExportCalendarHandler(c *gin.Context) {
	var req request_models.ExportCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	export, err := ec.exportService.BuildCalendar(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, export)
}

func (ec *ExportController) CreateShareLinkHandler(c *gin.Context) {
	var req request_models.ShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	link, err := ec.exportService.CreateShareLink(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, link)
}

func (ec *ExportController) GetSharedHandler(c *gin.Context) {
	record, err := ec.exportService.GetShared(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, record)
}
