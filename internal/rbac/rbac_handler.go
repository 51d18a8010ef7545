package rbac

import (
	"net/http"
	"strings"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce memeriksa izin role pemanggil, dipakai frontend untuk
// menyembunyikan menu.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	role := c.GetString("role")
	allowed, err := h.service.Enforce(role, strings.TrimSpace(req.Resource), strings.TrimSpace(req.Action))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to evaluate permission", nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Role: role, Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	role := c.GetString("role")
	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        role,
		Permissions: h.service.PermissionsForRole(role),
	}, nil)
}
