package handler

import (
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/dto"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler {
	return &VendasHandler{svc: svc}
}

// Listar is the sales page model: every sale, newest first.
func (h *VendasHandler) Listar(c *gin.Context) {
	vendas, err := h.svc.ListarVendas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendas": vendas})
}

// FormNova renders the sale form model: the selectable products and customers.
func (h *VendasHandler) FormNova(c *gin.Context) {
	m, err := h.svc.FormularioVenda(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao montar o formulário de venda"))
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *VendasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.RegistrarVenda(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/sales")
}
