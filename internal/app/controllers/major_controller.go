package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/app/models/dto"
	"github.com/yigit/majorpath/internal/app/services"
	"github.com/yigit/majorpath/internal/middleware"
)

// MajorController serves the majors catalog
type MajorController struct {
	majorService services.MajorService
}

// NewMajorController creates a new MajorController
func NewMajorController(majorService services.MajorService) *MajorController {
	return &MajorController{majorService: majorService}
}

// ListMajors returns every major
// @Summary List majors
// @Tags majors
// @Produce json
// @Success 200 {object} dto.MajorListResponse "Majors ordered by name"
// @Router /predict/major [get]
func (c *MajorController) ListMajors(ctx *gin.Context) {
	majors, err := c.majorService.ListMajors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MajorListResponse{Success: true, Data: majors})
}

// GetMajor returns one major by name
// @Summary Get a major by name
// @Description Name lookup ignores case
// @Tags majors
// @Produce json
// @Param majorName path string true "Major name"
// @Success 200 {object} dto.MajorDetailResponse "Major"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Router /predict/major/{majorName} [get]
func (c *MajorController) GetMajor(ctx *gin.Context) {
	major, err := c.majorService.GetMajorByName(ctx.Request.Context(), ctx.Param("majorName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MajorDetailResponse{
		Success:     true,
		ID:          major.ID,
		Name:        major.Name,
		Description: major.Description,
	})
}

// GetMajorRaw returns the bare major object
// @Summary Get a major by name (plain)
// @Tags majors
// @Produce json
// @Param name path string true "Major name"
// @Success 200 {object} models.Major "Major"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Router /major/{name} [get]
func (c *MajorController) GetMajorRaw(ctx *gin.Context) {
	major, err := c.majorService.GetMajorByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, major)
}
