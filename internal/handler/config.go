package handler

import (
	"net/http"

	"superganaderia/internal/apierror"
	"superganaderia/internal/dto"
	"superganaderia/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct{ svc service.ConfigService }

func NewConfigHandler(svc service.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

func (h *ConfigHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar la configuracion"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfigHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("clave"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Parametro no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar un parámetro del concurso
// @Description  Cambia un parámetro (p.ej. puntos_para_gol). Los goles mostrados se derivan en cada consulta, así que el cambio rige de inmediato; el cron de reconciliación refresca los contadores cacheados.
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clave path string true "Clave del parámetro"
// @Param        body  body dto.ActualizarConfigRequest true "Nuevo valor"
// @Success      200 {object} dto.ConfigResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/config/{clave} [put]
func (h *ConfigHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarConfigRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("clave"), req.Valor)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
