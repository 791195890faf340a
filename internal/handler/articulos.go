package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/service"
)

type ArticulosHandler struct{ svc service.ArticuloService }

func NewArticulosHandler(svc service.ArticuloService) *ArticulosHandler {
	return &ArticulosHandler{svc: svc}
}

// ListarArticulos godoc
// @Summary      Listar articulos del catalogo
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Codigo o descripcion"
// @Param        co_lin query string false "Linea"
// @Param        co_cat query string false "Categoria"
// @Param        page   query int    false "Pagina (default 1)"
// @Success      200  {object} dto.ArticuloListResponse
// @Router       /v1/articulos [get]
func (h *ArticulosHandler) ListarArticulos(c *gin.Context) {
	var filter dto.ArticuloFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerArticulo godoc
// @Summary      Consultar un articulo
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Param        co_art path string true "Codigo de articulo"
// @Success      200 {object} dto.ArticuloResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/articulos/{co_art} [get]
func (h *ArticulosHandler) ObtenerArticulo(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("co_art"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AutocompleteArticulos godoc
// @Summary      Autocompletar articulos con stock para el pedido
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Texto a buscar"
// @Success      200 {array} dto.AutocompleteItem
// @Router       /v1/articulos/autocomplete [get]
func (h *ArticulosHandler) AutocompleteArticulos(c *gin.Context) {
	items, err := h.svc.Autocomplete(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Promociones godoc
// @Summary      Articulos en promocion con stock
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ArticuloResponse
// @Router       /v1/articulos/promociones [get]
func (h *ArticulosHandler) Promociones(c *gin.Context) {
	resp, err := h.svc.Promociones(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Categorias godoc
// @Summary      Listar categorias
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoriaResponse
// @Router       /v1/articulos/categorias [get]
func (h *ArticulosHandler) Categorias(c *gin.Context) {
	resp, err := h.svc.Categorias(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lineas godoc
// @Summary      Listar lineas
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LineaResponse
// @Router       /v1/articulos/lineas [get]
func (h *ArticulosHandler) Lineas(c *gin.Context) {
	resp, err := h.svc.Lineas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Sublineas godoc
// @Summary      Listar sublineas
// @Tags         articulos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SublineaResponse
// @Router       /v1/articulos/sublineas [get]
func (h *ArticulosHandler) Sublineas(c *gin.Context) {
	resp, err := h.svc.Sublineas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
