package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/model/response/wrapper"
	"github.com/stitchworks/machine-log-backend/internal/service/user"
)

type UserHandler struct {
	srv *user.Service
}

func NewUserHandler(srv *user.Service) *UserHandler {
	return &UserHandler{srv: srv}
}

// Auth godoc
// @Summary Create or authenticate user
// @Description Authenticate an existing user or register a new one, setting the token cookie
// @Tags users
// @Accept json
// @Produce json
// @Param user body entity.AuthRequest true "Credentials"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.AuthResponse}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /users/auth [post]
func (h *UserHandler) Auth(c *gin.Context) {
	var request entity.AuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	_, token, err := h.srv.Authenticate(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidPassword) {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid password", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    entity.AuthResponse{Message: "Authenticated", Token: token},
		Success: true,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Clear the authentication cookie
// @Tags users
// @Produce json
// @Success 200 {object} wrapper.SuccessWrapper
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Successfully logged out",
		Success: true,
	})
}
