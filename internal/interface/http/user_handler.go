package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/users-api/internal/application"
	"github.com/oksasatya/users-api/internal/domain/entity"
	"github.com/oksasatya/users-api/pkg/response"
	"github.com/oksasatya/users-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req entity.CreateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload: "+validation.Message(validation.ToDetails(err)))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "create user", err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid id: must be an integer")
		return
	}

	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get user", err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// fail maps service errors to status codes. Storage details are passed through
// to the client as plain text.
func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	var verr *userapp.ValidationError
	var serr *userapp.StorageError
	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, "invalid payload: "+validation.Message(validation.ToDetails(verr.Err)))
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, userapp.ErrUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "Failed to "+op+": "+err.Error())
	case errors.As(err, &serr):
		response.Error(c, http.StatusInternalServerError, serr.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to "+op+": "+err.Error())
	}
}
