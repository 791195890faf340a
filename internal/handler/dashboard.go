package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Simoleans/profit/internal/middleware"
	"github.com/Simoleans/profit/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary      Indicadores del panel
// @Description  Clientes activos, facturas abiertas, cartera por vencer/vencida, promociones y pedidos del mes por estado.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardStatsResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Stats(c.Request.Context(), claims.CoVen, claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClientesSinPedidos godoc
// @Summary      Clientes activos sin pedidos registrados
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteSinPedidos
// @Router       /v1/dashboard/clientes-sin-pedidos [get]
func (h *DashboardHandler) ClientesSinPedidos(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ClientesSinPedidos(c.Request.Context(), claims.CoVen, claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClientesSinVentas godoc
// @Summary      Clientes sin ventas en los ultimos tres meses
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteSinVentas
// @Router       /v1/dashboard/clientes-sin-ventas [get]
func (h *DashboardHandler) ClientesSinVentas(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ClientesSinVentas(c.Request.Context(), claims.CoVen, claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
