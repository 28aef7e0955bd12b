package handler

import (
	"net/http"

	"estoque/internal/apierror"
	"estoque/internal/dto"
	"estoque/internal/service"
	"estoque/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc      service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions}
}

// Login authenticates the form credentials, opens a session, and redirects to
// the inventory page. A request that already carries a valid session is sent
// straight there.
func (h *AuthHandler) Login(c *gin.Context) {
	if token, ok := h.sessions.ReadToken(c.Request); ok {
		if _, err := h.sessions.Resolve(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
	}

	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.sessions.WriteCookie(c.Writer, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Registrar creates the account and redirects to login, mirroring the
// "Conta criada! Faça login." flow.
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if _, err := h.svc.Registrar(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout revokes the session server-side and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := h.sessions.ReadToken(c.Request); ok {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao encerrar a sessão"))
			return
		}
	}
	h.sessions.ClearCookie(c.Writer)
	c.Redirect(http.StatusFound, "/login")
}
