package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Simoleans/profit/internal/middleware"
	"github.com/Simoleans/profit/internal/service"
)

type CxCHandler struct{ svc service.CxCService }

func NewCxCHandler(svc service.CxCService) *CxCHandler { return &CxCHandler{svc: svc} }

// Resumen godoc
// @Summary      Resumen de cuentas por cobrar por cliente
// @Description  Clientes con saldo neto positivo en moneda de referencia, ordenados por saldo descendente.
// @Tags         cxc
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumenCxCResponse
// @Router       /v1/cxc [get]
func (h *CxCHandler) Resumen(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ResumenPorCliente(c.Request.Context(), claims.CoVen, claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Totales godoc
// @Summary      Totales de cartera: por vencer, vencido y facturas abiertas
// @Tags         cxc
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TotalesCxCResponse
// @Router       /v1/cxc/totales [get]
func (h *CxCHandler) Totales(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Totales(c.Request.Context(), claims.CoVen, claims.Rol)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detalle godoc
// @Summary      Documentos pendientes de un cliente
// @Tags         cxc
// @Produce      json
// @Security     BearerAuth
// @Param        co_cli path string true "Codigo de cliente"
// @Success      200 {object} dto.DetalleCxCResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cxc/{co_cli} [get]
func (h *CxCHandler) Detalle(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.DetallePorCliente(c.Request.Context(), claims.CoVen, claims.Rol, c.Param("co_cli"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
