package handler

import (
	"errors"
	"net/http"
	"strconv"

	"estoque/internal/apierror"
	"estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the request (form post or JSON body) and runs
// go-playground/validator tags. Returns false and writes the error response
// if validation fails — the caller should return immediately without writing
// another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Requisição inválida: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id route parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service failures onto HTTP statuses. Business-rule
// errors carry their own human-readable message; anything unexpected is logged
// by the error middleware and rendered as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var estoque *service.EstoqueInsuficienteError
	var entrada *service.EntradaInvalidaError
	switch {
	case errors.As(err, &entrada):
		c.JSON(http.StatusBadRequest, apierror.New(entrada.Error()))
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrUsuarioDuplicado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.As(err, &estoque):
		c.JSON(http.StatusConflict, apierror.New(estoque.Error()))
	default:
		_ = c.Error(err)
	}
}
