package handler

import (
	"covid-hospital-backend/internal/models"
	"covid-hospital-backend/internal/service"
	"covid-hospital-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GlobalCountHandler struct {
	countService *service.GlobalCountService
}

func NewGlobalCountHandler(countService *service.GlobalCountService) *GlobalCountHandler {
	return &GlobalCountHandler{
		countService: countService,
	}
}

// Register mounts the global count routes on rg
func (h *GlobalCountHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/latest", h.GetLatestCounts)
	rg.PUT("/:id", h.Update)
	rg.GET("", h.GetCountsWithPagination)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
}

// GetLatestCounts returns the most recently created count
func (h *GlobalCountHandler) GetLatestCounts(c *gin.Context) {
	counts, err := h.countService.GetLatestCount(c.Request.Context())
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, counts)
}

// Update sets the value of a count
func (h *GlobalCountHandler) Update(c *gin.Context) {
	var input models.GlobalCountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	count, err := h.countService.Update(c.Request.Context(), c.Param("id"), *input.Count)
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, count)
}

// GetCountsWithPagination pages through counts using the page and size query parameters
func (h *GlobalCountHandler) GetCountsWithPagination(c *gin.Context) {
	page, err := h.countService.GetCountsWithPagination(c.Request.Context(), c.Query("page"), c.Query("size"))
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, page)
}

// GetByID retrieves a count by ID
func (h *GlobalCountHandler) GetByID(c *gin.Context) {
	count, err := h.countService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.SuccessResponse(c, count)
}

// Create stores a new count
func (h *GlobalCountHandler) Create(c *gin.Context) {
	var input models.GlobalCountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	count, err := h.countService.Create(c.Request.Context(), *input.Count)
	if err != nil {
		utils.ExceptionResponse(c, err)
		return
	}

	utils.CreatedResponse(c, count)
}
