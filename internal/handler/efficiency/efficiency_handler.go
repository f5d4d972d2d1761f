package efficiency

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchworks/machine-log-backend/internal/model/response/wrapper"
	"github.com/stitchworks/machine-log-backend/internal/service/efficiency"
)

type EfficiencyHandler struct {
	srv *efficiency.Service
}

func NewEfficiencyHandler(srv *efficiency.Service) *EfficiencyHandler {
	return &EfficiencyHandler{srv: srv}
}

// GetOperatorEfficiencies godoc
// @Summary Per-log operator efficiency samples
// @Description One sample per stored log against the 8-hour standard shift; spans ending before they start are read as crossing midnight
// @Tags efficiency
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.OperatorEfficiency}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /efficiency/operators [get]
func (h *EfficiencyHandler) GetOperatorEfficiencies(c *gin.Context) {
	samples, err := h.srv.OperatorEfficiencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: samples, Success: true})
}

// GetLineEfficiencies godoc
// @Summary Line runtime efficiency
// @Description Runtime vs stoptime percentage per line
// @Tags efficiency
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.LineEfficiency}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /efficiency/lines [get]
func (h *EfficiencyHandler) GetLineEfficiencies(c *gin.Context) {
	lines, err := h.srv.LineEfficiencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: lines, Success: true})
}

// GetMachineCount godoc
// @Summary Count of distinct machines
// @Tags counts
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=int}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /counts/machines [get]
func (h *EfficiencyHandler) GetMachineCount(c *gin.Context) {
	count, err := h.srv.MachineCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: count, Success: true})
}

// GetLineCount godoc
// @Summary Count of distinct lines
// @Tags counts
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=int}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /counts/lines [get]
func (h *EfficiencyHandler) GetLineCount(c *gin.Context) {
	count, err := h.srv.LineCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: count, Success: true})
}

// GetUnderperformingOperators godoc
// @Summary Count of underperforming operators
// @Description Distinct operators seen in no-feeding, meeting or maintenance modes
// @Tags counts
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=int}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /counts/underperforming-operators [get]
func (h *EfficiencyHandler) GetUnderperformingOperators(c *gin.Context) {
	count, err := h.srv.UnderperformingOperatorCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: count, Success: true})
}
