package authservice

import (
	"context"
	"errors"
	"strings"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/pkg/token"
)

// MinPasswordLength é o comprimento mínimo exigido no registro.
const MinPasswordLength = 6

// AuthService implementa a lógica de negócio de registro e login.
type AuthService struct {
	UserRepo domain.UserRepository
	TokenSvc TokenService
	Logger   logger.Logger
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID int, username string) (string, error)
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewService cria uma nova instância do AuthService, injetando o Repositório,
// o serviço de token e o logger.
func NewService(repo domain.UserRepository, tokenSvc TokenService, log logger.Logger) *AuthService {
	return &AuthService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		Logger:   log,
	}
}

// Register registra um novo usuário e emite o token de sessão.
// A senha é armazenada como recebida — esta é uma loja de credenciais mock,
// volátil, sem hashing por contrato.
func (s *AuthService) Register(ctx context.Context, registration domain.UserRegistration) (domain.AuthSession, error) {
	// 1. Validação do payload (o cliente recebe apenas a mensagem genérica)
	if err := validateRegistration(registration); err != nil {
		s.Logger.Debug("Registro rejeitado na validação.", map[string]interface{}{
			"username": registration.Username,
			"reason":   err.Error(),
		})
		return domain.AuthSession{}, apperror.NewValidationError("Invalid data")
	}

	// 2. Criação do Objeto User
	newUser := domain.User{
		Username: registration.Username,
		Email:    registration.Email,
		Password: registration.Password,
	}

	// 3. Inserção atômica — duplicidade de username vira ConflictError aqui,
	// sem janela entre a verificação e a escrita.
	user, err := s.UserRepo.Save(ctx, newUser)
	if err != nil {
		var conflictErr *apperror.ConflictError
		if errors.As(err, &conflictErr) {
			return domain.AuthSession{}, err
		}
		return domain.AuthSession{}, apperror.NewInternalError("Falha ao salvar usuário.", err)
	}

	// 4. Emissão do token de sessão (registro já autentica)
	tokenString, err := s.TokenSvc.GenerateToken(user.ID, user.Username)
	if err != nil {
		return domain.AuthSession{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.Logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"user_id": user.ID, "username": user.Username})
	return domain.AuthSession{Token: tokenString, Username: user.Username}, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *AuthService) Login(ctx context.Context, username string, password string) (domain.AuthSession, error) {
	// 1. Validação de presença — payload incompleto é erro de dados (400),
	// não de credenciais.
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.AuthSession{}, apperror.NewValidationError("Invalid data")
	}

	// 2. Buscar Usuário pelo username
	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		// NotFound vira Unauthorized (401) para não revelar quais usernames existem.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return domain.AuthSession{}, apperror.NewUnauthorizedError("Invalid credentials")
		}
		return domain.AuthSession{}, err
	}

	// 3. Comparar senhas (igualdade direta — credenciais mock, sem hash).
	// Senha errada recebe exatamente a mesma resposta de username inexistente.
	if user.Password != password {
		s.Logger.Debug("Senha incorreta no login.", map[string]interface{}{"username": username})
		return domain.AuthSession{}, apperror.NewUnauthorizedError("Invalid credentials")
	}

	// 4. Gerar JWT
	tokenString, err := s.TokenSvc.GenerateToken(user.ID, user.Username)
	if err != nil {
		return domain.AuthSession{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.Logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID, "username": user.Username})
	return domain.AuthSession{Token: tokenString, Username: user.Username}, nil
}

// validateRegistration aplica o schema de registro: username obrigatório,
// email com formato mínimo e senha com pelo menos 6 caracteres. O detalhe por
// campo fica nos logs — o cliente só vê "Invalid data".
func validateRegistration(reg domain.UserRegistration) error {
	if strings.TrimSpace(reg.Username) == "" {
		return errors.New("username é obrigatório")
	}
	if !strings.Contains(reg.Email, "@") {
		return errors.New("email inválido")
	}
	if len(reg.Password) < MinPasswordLength {
		return errors.New("senha deve ter pelo menos 6 caracteres")
	}
	return nil
}
