package operator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchworks/machine-log-backend/internal/model/response/wrapper"
	"github.com/stitchworks/machine-log-backend/internal/repository"
)

type OperatorHandler struct {
	operators repository.OperatorRepository
}

func NewOperatorHandler(operators repository.OperatorRepository) *OperatorHandler {
	return &OperatorHandler{operators: operators}
}

// GetOperators godoc
// @Summary List registered operators
// @Tags operators
// @Produce json
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.Operator}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /operators [get]
func (h *OperatorHandler) GetOperators(c *gin.Context) {
	operators, err := h.operators.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: operators, Success: true})
}
