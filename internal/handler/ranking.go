package handler

import (
	"net/http"
	"time"

	"superganaderia/internal/apierror"
	"superganaderia/internal/dto"
	"superganaderia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RankingHandler struct{ svc service.RankingService }

func NewRankingHandler(svc service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Ranking godoc
// @Summary      Tabla de posiciones
// @Description  Equipos ordenados por puntos (desc), con desempate por nombre y posiciones densas 1..N. Filtrable por zona.
// @Tags         ranking
// @Produce      json
// @Security     BearerAuth
// @Param        zona_id query string false "Filtrar por zona (UUID)"
// @Param        limit   query int    false "Recortar a los primeros N"
// @Success      200 {object} dto.RankingResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ranking [get]
func (h *RankingHandler) Ranking(c *gin.Context) {
	var filter dto.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Ranking(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PosicionEquipo responde la posición de un equipo en el ranking global.
func (h *RankingHandler) PosicionEquipo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.PosicionEquipo(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular la posicion"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReportePDF streams the ranking as a downloadable PDF.
func (h *RankingHandler) ReportePDF(c *gin.Context) {
	var filter dto.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	pdf, err := h.svc.ReportePDF(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	filename := "ranking_" + time.Now().Format("20060102") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
