package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type GerenciamentoHandler struct{ svc service.GerenciamentoService }

func NewGerenciamentoHandler(svc service.GerenciamentoService) *GerenciamentoHandler {
	return &GerenciamentoHandler{svc: svc}
}

// Pagina is the management page model.
func (h *GerenciamentoHandler) Pagina(c *gin.Context) {
	m, err := h.svc.Modelo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao carregar o gerenciamento"))
		return
	}
	c.JSON(http.StatusOK, m)
}

// BaixarModelo serves the CSV import template as a file attachment.
func (h *GerenciamentoHandler) BaixarModelo(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ModeloCSV(&buf); err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename=modelo_estoque.csv`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Importar receives the multipart upload (field arquivo_csv) and answers with
// the aggregate import counts.
func (h *GerenciamentoHandler) Importar(c *gin.Context) {
	file, err := c.FormFile("arquivo_csv")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Nenhum arquivo."))
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Selecione um arquivo."))
		return
	}

	f, err := file.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	resp, err := h.svc.ImportarCSV(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, service.ErrArquivoInvalido) {
			c.JSON(http.StatusBadRequest, apierror.New(service.ErrArquivoInvalido.Error()))
			return
		}
		// Unexpected failure: the whole import was rolled back.
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar streams all rows of the requested kind as a CSV attachment.
func (h *GerenciamentoHandler) Exportar(c *gin.Context) {
	tipo := c.Param("tipo")

	var buf bytes.Buffer
	filename, err := h.svc.Exportar(c.Request.Context(), tipo, &buf)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// LimparVendas wipes the sales history in one transaction.
func (h *GerenciamentoHandler) LimparVendas(c *gin.Context) {
	if err := h.svc.LimparVendas(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao limpar o histórico de vendas."))
		return
	}
	c.Redirect(http.StatusSeeOther, "/bulk")
}
