package handler

import (
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

func (h *RelatoriosHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Gerar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar o relatório"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
