package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/middleware"
	"github.com/Simoleans/profit/internal/service"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler { return &PedidosHandler{svc: svc} }

func factNumParam(c *gin.Context) (int, bool) {
	factNum, err := strconv.Atoi(c.Param("fact_num"))
	if err != nil || factNum < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Numero de pedido invalido"))
		return 0, false
	}
	return factNum, true
}

// CrearPedido godoc
// @Summary      Registrar un nuevo pedido
// @Description  Crea el pedido con numeracion correlativa, calcula totales e IVA y notifica al cliente por correo.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Detalle del pedido"
// @Success      201  {object} dto.PedidoResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/pedidos [post]
func (h *PedidosHandler) CrearPedido(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Crear(c.Request.Context(), claims.CoVen, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarPedido godoc
// @Summary      Modificar un pedido pendiente
// @Description  Reemplaza los renglones completos y recalcula totales. Solo pedidos en estado P no anulados.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Param        body body dto.ActualizarPedidoRequest true "Renglones nuevos"
// @Success      200  {object} dto.PedidoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num} [put]
func (h *PedidosHandler) ActualizarPedido(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Actualizar(c.Request.Context(), claims.CoVen, claims.Rol, factNum, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnularPedido godoc
// @Summary      Anular un pedido
// @Description  Marca el pedido como anulado. Irreversible.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num} [delete]
func (h *PedidosHandler) AnularPedido(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Anular(c.Request.Context(), claims.CoVen, claims.Rol, factNum); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AprobarPedido godoc
// @Summary      Aprobar un pedido pendiente
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num}/aprobar [post]
func (h *PedidosHandler) AprobarPedido(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	if err := h.svc.Aprobar(c.Request.Context(), factNum); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RechazarPedido godoc
// @Summary      Rechazar un pedido pendiente
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num}/rechazar [post]
func (h *PedidosHandler) RechazarPedido(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	if err := h.svc.Rechazar(c.Request.Context(), factNum); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ObtenerPedido godoc
// @Summary      Consultar un pedido con sus renglones
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Success      200  {object} dto.PedidoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num} [get]
func (h *PedidosHandler) ObtenerPedido(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Obtener(c.Request.Context(), claims.CoVen, claims.Rol, factNum)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPedidos godoc
// @Summary      Listar pedidos
// @Description  Pagina de 15 pedidos, mas reciente primero. Vendedores solo ven los propios.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Numero exacto o cliente"
// @Param        status query string false "P | A | R | F"
// @Param        page   query int    false "Pagina (default 1)"
// @Success      200  {object} dto.PedidoListResponse
// @Router       /v1/pedidos [get]
func (h *PedidosHandler) ListarPedidos(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.CoVen, claims.Rol, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReenviarCorreo godoc
// @Summary      Reenviar el correo de notificacion del pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        fact_num path int true "Numero de pedido"
// @Success      202
// @Failure      404  {object} apierror.APIError
// @Router       /v1/pedidos/{fact_num}/reenviar-correo [post]
func (h *PedidosHandler) ReenviarCorreo(c *gin.Context) {
	factNum, ok := factNumParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.ReenviarCorreo(c.Request.Context(), claims.CoVen, claims.Rol, factNum); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
