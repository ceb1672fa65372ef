package userrepo

import (
	"context"
	"fmt"
	"sync"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
)

// UserRepository implementa a interface domain.UserRepository com um mapa em
// memória indexado por username, protegido por mutex. Nenhum registro
// sobrevive ao reinício do processo.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int
	logger logger.Logger
}

// NewUserRepository cria uma nova instância do repositório de usuários.
func NewUserRepository(log logger.Logger) *UserRepository {
	return &UserRepository{
		users:  make(map[string]domain.User),
		nextID: 1,
		logger: log,
	}
}

// Save insere um novo usuário de forma atômica (insert-if-absent): a
// verificação de unicidade do username e a inserção acontecem sob o mesmo
// lock. Registros concorrentes com o mesmo username resultam em exatamente um
// sucesso; os demais recebem ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		r.logger.Debug("Tentativa de registro com username duplicado.", map[string]interface{}{"username": user.Username})
		return domain.User{}, apperror.NewConflictError("Username already exists")
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "username": user.Username})
	return user, nil
}

// FindByUsername busca um usuário pelo nome.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		r.logger.Debug("Usuário não encontrado no repositório.", map[string]interface{}{"username_attempt": username})
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("User '%s' not found", username))
	}

	return user, nil
}
