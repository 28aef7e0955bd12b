package handler

import (
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/dto"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Listar is the inventory page model: every product.
func (h *ProdutosHandler) Listar(c *gin.Context) {
	produtos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"produtos": produtos})
}

// FormNovo renders the blank product form model.
func (h *ProdutosHandler) FormNovo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"produto": nil})
}

func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.ProdutoFormRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Criar(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// FormEditar renders the pre-filled product form model.
func (h *ProdutosHandler) FormEditar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	produto, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"produto": produto})
}

func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ProdutoFormRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Atualizar(c.Request.Context(), id, req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *ProdutosHandler) Remover(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
