package handler

import (
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/dto"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar clientes"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientes": clientes})
}

func (h *ClientesHandler) FormNovo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cliente": nil})
}

func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.ClienteFormRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Criar(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (h *ClientesHandler) FormEditar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cliente, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cliente": cliente})
}

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ClienteFormRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Atualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}

func (h *ClientesHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers")
}
