package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/middleware"
	"github.com/Simoleans/profit/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// RegistrarCliente godoc
// @Summary      Registrar un cliente pendiente
// @Description  Alta de cliente en espera de confirmacion por la oficina. El rif debe ser unico.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarClienteRequest true "Datos del cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) RegistrarCliente(c *gin.Context) {
	var req dto.RegistrarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Registrar(c.Request.Context(), claims.CoVen, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarCliente godoc
// @Summary      Modificar un cliente pendiente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        rif  path string true "RIF del cliente pendiente"
// @Param        body body dto.ActualizarClienteRequest true "Campos a modificar"
// @Success      200  {object} dto.ClienteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{rif} [put]
func (h *ClientesHandler) ActualizarCliente(c *gin.Context) {
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ActualizarPendiente(c.Request.Context(), claims.CoVen, claims.Rol, c.Param("rif"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarCliente godoc
// @Summary      Desactivar un cliente confirmado
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        co_cli path string true "Codigo de cliente"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{co_cli} [delete]
func (h *ClientesHandler) DesactivarCliente(c *gin.Context) {
	if err := h.svc.Desactivar(c.Request.Context(), c.Param("co_cli")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarClientes godoc
// @Summary      Listar clientes confirmados o pendientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        tab    query string false "processed | temp (default processed)"
// @Param        search query string false "Codigo, nombre o rif"
// @Param        page   query int    false "Pagina (default 1)"
// @Success      200  {object} dto.ClienteListResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) ListarClientes(c *gin.Context) {
	var filter dto.ClienteFilter
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

// AutocompleteClientes godoc
// @Summary      Autocompletar clientes para el formulario de pedido
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Texto a buscar"
// @Success      200 {array} dto.AutocompleteItem
// @Router       /v1/clientes/autocomplete [get]
func (h *ClientesHandler) AutocompleteClientes(c *gin.Context) {
	claims := middleware.GetClaims(c)
	items, err := h.svc.Autocomplete(c.Request.Context(), claims.CoVen, claims.Rol, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ExisteCliente godoc
// @Summary      Verificar existencia de un codigo de cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        co_cli path string true "Codigo de cliente"
// @Success      200 {object} map[string]bool
// @Router       /v1/clientes/{co_cli}/existe [get]
func (h *ClientesHandler) ExisteCliente(c *gin.Context) {
	exists, err := h.svc.Existe(c.Request.Context(), c.Param("co_cli"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"existe": exists})
}

// SubirDocumento godoc
// @Summary      Adjuntar un documento a un cliente pendiente
// @Tags         clientes
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        rif  path string true "RIF del cliente pendiente"
// @Param        file formData file true "Documento (rif, registro mercantil, etc.)"
// @Success      201 {object} dto.MediaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{rif}/documentos [post]
func (h *ClientesHandler) SubirDocumento(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("archivo requerido"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer el archivo"))
		return
	}
	defer f.Close()

	resp, err := h.svc.AdjuntarDocumento(
		c.Request.Context(),
		c.Param("rif"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarDocumentos godoc
// @Summary      Listar documentos adjuntos de un cliente pendiente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        rif path string true "RIF del cliente pendiente"
// @Success      200 {array} dto.MediaResponse
// @Router       /v1/clientes/{rif}/documentos [get]
func (h *ClientesHandler) ListarDocumentos(c *gin.Context) {
	resp, err := h.svc.Documentos(c.Request.Context(), c.Param("rif"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarDocumento godoc
// @Summary      Descargar un documento adjunto
// @Tags         clientes
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id path string true "ID del documento"
// @Success      200
// @Failure      404 {object} apierror.APIError
// @Router       /v1/documentos/{id} [get]
func (h *ClientesHandler) DescargarDocumento(c *gin.Context) {
	path, fileName, err := h.svc.RutaDocumento(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, fileName)
}
