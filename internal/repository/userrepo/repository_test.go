package userrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/repository/userrepo"
)

func newTestRepo() *userrepo.UserRepository {
	return userrepo.NewUserRepository(logger.NewLogger("error"))
}

// TestSaveAndFind testa o ciclo básico de registro e busca.
func TestSaveAndFind(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.User{Username: "alice", Email: "alice@example.com", Password: "senha123"})
	assert.NoError(t, err)
	assert.Equal(t, 1, saved.ID)

	found, err := repo.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, saved, found)
}

// TestFind_NotFound testa a busca por username inexistente.
func TestFind_NotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.FindByUsername(context.Background(), "ninguem")
	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestSave_Duplicate testa o insert-if-absent: o segundo registro com o mesmo
// username falha com ConflictError.
func TestSave_Duplicate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Save(ctx, domain.User{Username: "alice", Email: "a@example.com", Password: "senha123"})
	assert.NoError(t, err)

	_, err = repo.Save(ctx, domain.User{Username: "alice", Email: "outra@example.com", Password: "outra123"})
	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

// TestSave_ConcurrentDuplicates testa que registros concorrentes com o mesmo
// username produzem exatamente um sucesso — sem janela de corrida
// check-then-act.
func TestSave_ConcurrentDuplicates(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	const workers = 20
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, domain.User{Username: "corrida", Email: "c@example.com", Password: "senha123"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			assert.IsType(t, &apperror.ConflictError{}, err)
		}
	}
	assert.Equal(t, 1, successes)
}

// TestSave_SequentialIDs testa que os IDs de usuário crescem com cada registro.
func TestSave_SequentialIDs(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	a, err := repo.Save(ctx, domain.User{Username: "a", Password: "senha123"})
	assert.NoError(t, err)
	b, err := repo.Save(ctx, domain.User{Username: "b", Password: "senha123"})
	assert.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}
