package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// O contrato com o cliente expõe apenas a mensagem — detalhes por campo
// ficam restritos aos logs do servidor.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Message string `json:"message" example:"Invalid data"`
}

// AuthResponse é o corpo de sucesso das rotas de registro e login.
// @Description Token JWT emitido junto com a identidade autenticada.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Message  string `json:"message" example:"Login successful"`
}
