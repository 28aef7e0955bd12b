package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"estoque/internal/handler"
	"estoque/internal/middleware"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func newVendasRouter(svc service.VendaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := handler.NewVendasHandler(svc)
	r.POST("/sales/new", h.Registrar)
	return r
}

func TestRegistrarVendaHTTP_QuantidadeMalformada(t *testing.T) {
	// Coercion fails before any repository access.
	r := newVendasRouter(service.NewVendaService(nil, nil, nil))

	rec := postForm(r, "/sales/new", url.Values{
		"produto_id": {"1"},
		"quantidade": {"abc"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quantidade inválida.")
	assert.NotContains(t, rec.Body.String(), "Erro interno")
}

func TestRegistrarVendaHTTP_ProdutoMalformado(t *testing.T) {
	r := newVendasRouter(service.NewVendaService(nil, nil, nil))

	rec := postForm(r, "/sales/new", url.Values{
		"produto_id": {"primeiro"},
		"quantidade": {"1"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Produto inválido.")
}
