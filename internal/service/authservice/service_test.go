package authservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/pkg/token"
	"sustentaplus/internal/service/authservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

// Helper: serviço real de token para poder decodificar o que o serviço emite.
func newTestTokenService() *token.Service {
	return token.NewService("test-secret", 24*time.Hour)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("error")
}

// --- Testes para Register ---

// TestRegister_Success testa que um registro válido retorna um token
// decodificável de volta para o mesmo username.
func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenSvc := newTestTokenService()
	svc := authservice.NewService(mockRepo, tokenSvc, newTestLogger())

	reg := domain.UserRegistration{Username: "alice", Email: "alice@example.com", Password: "senha123"}
	saved := domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "senha123"}
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).Return(saved, nil)

	session, err := svc.Register(context.Background(), reg)

	assert.NoError(t, err)
	assert.Equal(t, "alice", session.Username)

	claims, err := tokenSvc.ValidateToken(session.Token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, 1, claims.UserID)
	mockRepo.AssertExpectations(t)
}

// TestRegister_DuplicateUsername testa a propagação do conflito (HTTP 400).
func TestRegister_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	reg := domain.UserRegistration{Username: "alice", Email: "alice@example.com", Password: "senha123"}
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.User")).
		Return(domain.User{}, apperror.NewConflictError("Username already exists"))

	_, err := svc.Register(context.Background(), reg)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	mockRepo.AssertExpectations(t)
}

// TestRegister_ShortPassword testa o mínimo de 6 caracteres — a mensagem
// pública é sempre a genérica "Invalid data".
func TestRegister_ShortPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	reg := domain.UserRegistration{Username: "alice", Email: "alice@example.com", Password: "curta"}

	_, err := svc.Register(context.Background(), reg)

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "Invalid data", appErr.Message())
	mockRepo.AssertNotCalled(t, "Save")
}

// TestRegister_InvalidEmail testa a rejeição de email sem formato mínimo.
func TestRegister_InvalidEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	reg := domain.UserRegistration{Username: "alice", Email: "sem-arroba", Password: "senha123"}

	_, err := svc.Register(context.Background(), reg)

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Save")
}

// --- Testes para Login ---

// TestLogin_Success testa o fluxo feliz de login.
func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokenSvc := newTestTokenService()
	svc := authservice.NewService(mockRepo, tokenSvc, newTestLogger())

	stored := domain.User{ID: 3, Username: "alice", Email: "alice@example.com", Password: "senha123"}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	session, err := svc.Login(context.Background(), "alice", "senha123")

	assert.NoError(t, err)
	assert.Equal(t, "alice", session.Username)

	claims, err := tokenSvc.ValidateToken(session.Token)
	assert.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	mockRepo.AssertExpectations(t)
}

// TestLogin_WrongPassword: alice com senha errada recebe 401 "Invalid credentials".
func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	stored := domain.User{ID: 3, Username: "alice", Password: "senha123"}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	_, err := svc.Login(context.Background(), "alice", "wrong")

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPStatus())
	assert.Equal(t, "Invalid credentials", appErr.Message())
}

// TestLogin_UnknownUser testa que username inexistente produz exatamente o
// mesmo erro de senha errada (sem vazar quais usuários existem).
func TestLogin_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	mockRepo.On("FindByUsername", mock.Anything, "fantasma").
		Return(domain.User{}, apperror.NewNotFoundError("User 'fantasma' not found"))

	_, err := svc.Login(context.Background(), "fantasma", "qualquer")

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPStatus())
	assert.Equal(t, "Invalid credentials", appErr.Message())
}

// TestLogin_MissingFields testa que payload incompleto é 400, não 401.
func TestLogin_MissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := authservice.NewService(mockRepo, newTestTokenService(), newTestLogger())

	_, err := svc.Login(context.Background(), "", "senha123")
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.IsType(t, &apperror.ValidationError{}, err)

	mockRepo.AssertNotCalled(t, "FindByUsername")
}
