package domain

import "context"

// User representa a entidade do usuário no sistema.
// A senha é armazenada como recebida (loja de credenciais mock, sem hashing)
// e nunca é serializada nas respostas da API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // Oculta a senha no JSON de resposta
}

// UserRegistration representa o payload de entrada para o registro.
type UserRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSession é o resultado de um registro ou login bem-sucedido:
// o token assinado e a identidade a quem ele pertence.
type AuthSession struct {
	Token    string
	Username string
}

// UserRepository define o contrato de armazenamento para a entidade User.
// Save é um insert-if-absent atômico: a verificação de unicidade do username
// e a inserção acontecem sob o mesmo lock, eliminando a janela de corrida
// entre registros concorrentes com o mesmo nome.
type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}

// AuthService define o contrato de lógica de negócio de autenticação.
type AuthService interface {
	Register(ctx context.Context, registration UserRegistration) (AuthSession, error)
	Login(ctx context.Context, username string, password string) (AuthSession, error)
}
