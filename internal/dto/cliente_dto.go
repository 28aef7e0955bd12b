package dto

type ClienteFormRequest struct {
	Nome     string `form:"nome"     json:"nome"     validate:"required,max=100"`
	Telefone string `form:"telefone" json:"telefone"`
	Email    string `form:"email"    json:"email"`
	Cidade   string `form:"cidade"   json:"cidade"`
}

type ClienteResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Cidade   *string `json:"cidade"`
}
