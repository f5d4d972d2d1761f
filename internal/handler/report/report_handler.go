package report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stitchworks/machine-log-backend/internal/model/response/wrapper"
	"github.com/stitchworks/machine-log-backend/internal/service/report"
)

type ReportHandler struct {
	srv *report.Service
}

func NewReportHandler(srv *report.Service) *ReportHandler {
	return &ReportHandler{srv: srv}
}

// GetOperatorReport godoc
// @Summary Operator report
// @Description KPI report for one operator by display name, or "all" for every registered operator plus a combined summary
// @Tags reports
// @Produce json
// @Param name path string true "Operator display name, or all"
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.OperatorReport}
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /reports/operators/{name} [get]
func (h *ReportHandler) GetOperatorReport(c *gin.Context) {
	name := c.Param("name")
	fromDate := queryPtr(c, "from_date")
	toDate := queryPtr(c, "to_date")

	if name == "all" {
		rollup, err := h.srv.OperatorsRollup(c.Request.Context(), fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rollup, Success: true})
		return
	}

	operatorReport, err := h.srv.OperatorReport(c.Request.Context(), name, fromDate, toDate)
	if err != nil {
		if errors.Is(err, report.ErrOperatorNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Operator not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: operatorReport, Success: true})
}

// GetOperatorSummaries godoc
// @Summary All-operators summary list
// @Description One derived-idle summary row per registered operator
// @Tags reports
// @Produce json
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.OperatorSummaryRow}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /reports/operators [get]
func (h *ReportHandler) GetOperatorSummaries(c *gin.Context) {
	rows, err := h.srv.OperatorSummaries(c.Request.Context(), queryPtr(c, "from_date"), queryPtr(c, "to_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rows, Success: true})
}

// GetLineReport godoc
// @Summary Line report
// @Description KPI report for one production line, or "all" for every line plus a combined summary
// @Tags reports
// @Produce json
// @Param line path string true "Line number, or all"
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.LineReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /reports/lines/{line} [get]
func (h *ReportHandler) GetLineReport(c *gin.Context) {
	lineParam := c.Param("line")
	fromDate := queryPtr(c, "from_date")
	toDate := queryPtr(c, "to_date")

	if lineParam == "all" {
		rollup, err := h.srv.LinesRollup(c.Request.Context(), fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rollup, Success: true})
		return
	}

	lineNumber, err := strconv.Atoi(lineParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "line must be a number or all", Success: false})
		return
	}

	lineReport, err := h.srv.LineReport(c.Request.Context(), lineNumber, fromDate, toDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: lineReport, Success: true})
}

// GetMachineReport godoc
// @Summary Machine report
// @Description KPI report for one machine, or "all" for every machine plus a combined summary
// @Tags reports
// @Produce json
// @Param id path string true "Machine id, or all"
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.MachineReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /reports/machines/{id} [get]
func (h *ReportHandler) GetMachineReport(c *gin.Context) {
	idParam := c.Param("id")
	fromDate := queryPtr(c, "from_date")
	toDate := queryPtr(c, "to_date")

	if idParam == "all" {
		rollup, err := h.srv.MachinesRollup(c.Request.Context(), fromDate, toDate)
		if err != nil {
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rollup, Success: true})
		return
	}

	machineID, err := strconv.Atoi(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "machine id must be a number or all", Success: false})
		return
	}

	machineReport, err := h.srv.MachineReport(c.Request.Context(), machineID, fromDate, toDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: machineReport, Success: true})
}

// GetGlobalReport godoc
// @Summary Plant-wide report
// @Description All machines over a date range under the machine policy
// @Tags reports
// @Produce json
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.MachinesRollup}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /reports/machines [get]
func (h *ReportHandler) GetGlobalReport(c *gin.Context) {
	rollup, err := h.srv.MachinesRollup(c.Request.Context(), queryPtr(c, "from_date"), queryPtr(c, "to_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rollup, Success: true})
}

func queryPtr(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}
