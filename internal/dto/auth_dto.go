package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegistrarRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=100"`
	Password string `form:"password" json:"password" validate:"required,min=4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
