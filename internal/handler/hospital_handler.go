package handler

import (
	"net/http"

	"covid-hospital-backend/internal/importer"
	"covid-hospital-backend/internal/middleware"
	"covid-hospital-backend/internal/models"
	"covid-hospital-backend/internal/service"
	"covid-hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	validate        *validator.Validate
	logger          *zap.Logger
}

func NewHospitalHandler(hospitalService *service.HospitalService, validate *validator.Validate, logger *zap.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		validate:        validate,
		logger:          logger,
	}
}

// Register mounts the hospital routes on rg
func (h *HospitalHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateHospital)
	rg.POST("/import-json/:rows/:remove", h.ImportHospitalsFromJSONFile)
	rg.PUT("/import-json/update", h.UpdateHospitalsFromJSONFile)
	rg.GET("", h.GetAllHospitals)
	rg.GET("/covid", h.GetHospitalsForCovid)
	rg.GET("/:nameSlug", h.GetHospitalBySlug)
	rg.GET("/id/:id", h.GetHospitalByID)
	rg.PUT("/:id", middleware.ValidateHospital(h.validate), h.UpdateHospital)
	rg.DELETE("/:id", h.RemoveHospital)
}

// CreateHospital creates a hospital from the request body
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var input models.HospitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	hospital, err := h.hospitalService.CreateHospital(c.Request.Context(), input)
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.CreatedResponse(c, hospital)
}

// ImportHospitalsFromJSONFile loads rows of the data file.
// :rows is "all" or "<from>-<to>"; :remove=true wipes existing hospitals first in "all" mode.
// Failures are not recovered here: they abort the request with gin's default 500.
func (h *HospitalHandler) ImportHospitalsFromJSONFile(c *gin.Context) {
	query := importer.ParseRows(c.Param("rows"), c.Param("remove"))

	if _, err := h.hospitalService.ImportFromSource(c.Request.Context(), query); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	utils.TextResponse(c, "Data load completed")
}

// UpdateHospitalsFromJSONFile re-creates hospitals whose data file rows changed
func (h *HospitalHandler) UpdateHospitalsFromJSONFile(c *gin.Context) {
	set, err := h.hospitalService.UpdateFromSource(c.Request.Context())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	if len(set.Data) == 0 {
		utils.TextResponse(c, "There are no data to update from json.")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":              "Hospitals updated successfully",
		"updatedSerialNumbers": set.SerialNumbers,
	})
}

// GetAllHospitals lists hospitals, passing the query string through as filters
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	page, err := h.hospitalService.GetHospitals(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, page)
}

// GetHospitalsForCovid lists hospitals flagged for COVID
func (h *HospitalHandler) GetHospitalsForCovid(c *gin.Context) {
	docs, err := h.hospitalService.GetCovidHospitals(c.Request.Context())
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"docs": docs})
}

// GetHospitalBySlug returns the first hospital with the slug, or null when there is none
func (h *HospitalHandler) GetHospitalBySlug(c *gin.Context) {
	hospitals, err := h.hospitalService.GetHospitalBySlug(c.Request.Context(), c.Param("nameSlug"))
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	if len(hospitals) == 0 {
		utils.SuccessResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, hospitals[0])
}

// GetHospitalByID retrieves a hospital by ID
func (h *HospitalHandler) GetHospitalByID(c *gin.Context) {
	hospital, err := h.hospitalService.GetHospitalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// UpdateHospital updates a hospital with the body checked by ValidateHospital
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id := c.Param("id")
	input := c.MustGet(middleware.HospitalInputKey).(models.HospitalInput)

	h.logger.Info("Updating hospital",
		zap.String("id", id),
		zap.Any("body", input),
	)

	hospital, err := h.hospitalService.UpdateHospital(c.Request.Context(), id, input)
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// RemoveHospital deletes a hospital by ID
func (h *HospitalHandler) RemoveHospital(c *gin.Context) {
	id := c.Param("id")
	h.logger.Info("Deleting hospital", zap.String("id", id))

	hospital, err := h.hospitalService.DeleteHospital(c.Request.Context(), id)
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	if hospital == nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Unable to delete hospital record")
		return
	}

	utils.MessageResponse(c, "'"+hospital.Name+"' removed successfully.")
}
