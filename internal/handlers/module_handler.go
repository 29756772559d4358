package handlers

import (
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	Service *service.ModuleService
}

func NewModuleHandler(s *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: s}
}

// ListModules returns all modules with their categories. When userId is
// given, each entry carries that user's progress percentages.
func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.Service.ListModules(c.Request.Context(), c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) GetModule(c *gin.Context) {
	module, err := h.Service.GetModule(c.Request.Context(), c.Param("id"), c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, module)
}
