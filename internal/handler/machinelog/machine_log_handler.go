package machinelog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/model/response/wrapper"
	"github.com/stitchworks/machine-log-backend/internal/service/machinelog"
)

type MachineLogHandler struct {
	srv *machinelog.Service
}

func NewMachineLogHandler(srv *machinelog.Service) *MachineLogHandler {
	return &MachineLogHandler{srv: srv}
}

// CreateLog godoc
// @Summary Ingest a machine log segment
// @Description Store one activity segment reported by a sewing machine. Duplicate submissions are acknowledged but recorded separately.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body entity.CreateMachineLogRequest true "Machine log payload"
// @Success 201 {object} wrapper.ResponseWrapper{data=entity.MachineLog}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs [post]
func (h *MachineLogHandler) CreateLog(c *gin.Context) {
	var request entity.CreateMachineLogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	machineLog, duplicate, err := h.srv.Create(c.Request.Context(), &request)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	if duplicate {
		c.JSON(http.StatusCreated, wrapper.SuccessWrapper{Message: "Duplicate log", Success: true})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: machineLog, Success: true})
}

// GetLogs godoc
// @Summary List machine logs
// @Description List logs in creation order with 1-based indexes, optionally date-filtered
// @Tags logs
// @Produce json
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.IndexedMachineLog}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /admin/logs [get]
func (h *MachineLogHandler) GetLogs(c *gin.Context) {
	logs, err := h.srv.List(c.Request.Context(), queryPtr(c, "from_date"), queryPtr(c, "to_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: logs, Success: true})
}

// GetConsolidated godoc
// @Summary Latest consolidated logs
// @Description Latest 10000 logs by date, optionally date-filtered
// @Tags logs
// @Produce json
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.MachineLog}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/consolidated [get]
func (h *MachineLogHandler) GetConsolidated(c *gin.Context) {
	logs, err := h.srv.Consolidated(c.Request.Context(), queryPtr(c, "from_date"), queryPtr(c, "to_date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: logs, Success: true})
}

// FilterLogs godoc
// @Summary Filter logs by line
// @Description Logs narrowed by line number and date range, annotated with mode label and operator name
// @Tags logs
// @Produce json
// @Param line_number query int false "Line number"
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Row limit"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.AnnotatedMachineLog}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/filter [get]
func (h *MachineLogHandler) FilterLogs(c *gin.Context) {
	var filter entity.MachineLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	logs, err := h.srv.Filter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: logs, Success: true})
}

// FilterMachineLogs godoc
// @Summary Filter logs by machine
// @Description Logs narrowed by machine id and date range, annotated with mode label and operator name
// @Tags logs
// @Produce json
// @Param machine_id query int false "Machine id"
// @Param from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Row limit"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.AnnotatedMachineLog}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/machine-filter [get]
func (h *MachineLogHandler) FilterMachineLogs(c *gin.Context) {
	var filter entity.MachineLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}
	filter.LineNumber = nil

	logs, err := h.srv.Filter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: logs, Success: true})
}

// GetLineNumbers godoc
// @Summary Distinct line numbers
// @Tags logs
// @Produce json
// @Param from_date query string true "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]int}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/line-numbers [get]
func (h *MachineLogHandler) GetLineNumbers(c *gin.Context) {
	fromDate, toDate, ok := requiredDates(c)
	if !ok {
		return
	}

	lines, err := h.srv.LineNumbers(c.Request.Context(), fromDate, toDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: lines, Success: true})
}

// GetMachineIDs godoc
// @Summary Distinct machine ids
// @Tags logs
// @Produce json
// @Param from_date query string true "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]int}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/machine-ids [get]
func (h *MachineLogHandler) GetMachineIDs(c *gin.Context) {
	fromDate, toDate, ok := requiredDates(c)
	if !ok {
		return
	}

	machines, err := h.srv.MachineIDs(c.Request.Context(), fromDate, toDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: machines, Success: true})
}

// GetOperatorIDs godoc
// @Summary Distinct operator ids
// @Description Operator ids seen in the range; the unassigned id "0" is excluded
// @Tags logs
// @Produce json
// @Param from_date query string true "Inclusive start date (YYYY-MM-DD)"
// @Param to_date query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]string}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /logs/operator-ids [get]
func (h *MachineLogHandler) GetOperatorIDs(c *gin.Context) {
	fromDate, toDate, ok := requiredDates(c)
	if !ok {
		return
	}

	operators, err := h.srv.OperatorIDs(c.Request.Context(), fromDate, toDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: operators, Success: true})
}

func queryPtr(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}

func requiredDates(c *gin.Context) (string, string, bool) {
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")
	if fromDate == "" || toDate == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "from_date and to_date are required", Success: false})
		return "", "", false
	}
	return fromDate, toDate, true
}
