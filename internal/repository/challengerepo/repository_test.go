package challengerepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/repository/challengerepo"
)

func newTestRepo() *challengerepo.ChallengeRepository {
	return challengerepo.NewChallengeRepository(logger.NewLogger("error"))
}

// TestSave_RoundTrip garante que create(X) seguido de get(id) devolve X em
// todos os campos, exceto os atribuídos pelo servidor (id e timestamps).
func TestSave_RoundTrip(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	input := domain.ChallengeInput{
		Titulo:           "Composte Resíduos Orgânicos",
		Descricao:        "Separe e composte o lixo orgânico por duas semanas",
		NivelDificuldade: "MEDIO",
		Categoria:        "RESIDUOS",
		PontuacaoMaxima:  150,
		TempoEstimado:    14,
	}

	created, err := repo.Save(ctx, input)
	assert.NoError(t, err)
	assert.True(t, created.StatusAtivo)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, input.Titulo, got.Titulo)
	assert.Equal(t, input.Descricao, got.Descricao)
	assert.Equal(t, input.NivelDificuldade, got.NivelDificuldade)
	assert.Equal(t, input.Categoria, got.Categoria)
	assert.Equal(t, input.PontuacaoMaxima, got.PontuacaoMaxima)
	assert.Equal(t, input.TempoEstimado, got.TempoEstimado)
}

// TestSave_MonotonicIDs testa que cada ID emitido é estritamente maior que
// todos os anteriores na vida do processo, inclusive após deleções.
func TestSave_MonotonicIDs(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	first, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "A"})
	assert.NoError(t, err)
	second, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "B"})
	assert.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	// Deleção não libera o ID para reutilização.
	assert.NoError(t, repo.Delete(ctx, second.ID))

	third, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "C"})
	assert.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

// TestFindAll_InsertionOrder testa que a listagem preserva a ordem de criação.
func TestFindAll_InsertionOrder(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	titles := []string{"Primeiro", "Segundo", "Terceiro"}
	for _, titulo := range titles {
		_, err := repo.Save(ctx, domain.ChallengeInput{Titulo: titulo})
		assert.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	for i, titulo := range titles {
		assert.Equal(t, titulo, all[i].Titulo)
	}
}

// TestSeed carrega os dois desafios de demonstração e o contador continua em 3.
func TestSeed(t *testing.T) {
	repo := newTestRepo()
	repo.Seed()
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "Reduza o Consumo de Água", all[0].Titulo)
	assert.Equal(t, 2, all[1].ID)
	assert.Equal(t, "Use Transporte Público", all[1].Titulo)

	next, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "Novo"})
	assert.NoError(t, err)
	assert.Equal(t, 3, next.ID)
}

// TestUpdate_TruthyMerge testa a semântica de sobrescrita parcial: campos
// zero/vazios no input mantêm o valor anterior.
func TestUpdate_TruthyMerge(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Save(ctx, domain.ChallengeInput{
		Titulo:           "Original",
		Descricao:        "Descrição original",
		NivelDificuldade: "FACIL",
		Categoria:        "AGUA",
		PontuacaoMaxima:  100,
		TempoEstimado:    7,
	})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.ChallengeInput{
		Titulo:          "Novo Título",
		PontuacaoMaxima: 250,
		// Demais campos ausentes: devem permanecer intactos.
	})
	assert.NoError(t, err)
	assert.Equal(t, "Novo Título", updated.Titulo)
	assert.Equal(t, float64(250), updated.PontuacaoMaxima)
	assert.Equal(t, "Descrição original", updated.Descricao)
	assert.Equal(t, "FACIL", updated.NivelDificuldade)
	assert.Equal(t, "AGUA", updated.Categoria)
	assert.Equal(t, float64(7), updated.TempoEstimado)
}

// TestUpdate_ZeroScoreIgnored documenta o comportamento atual: enviar
// pontuacaoMaxima = 0 não zera o campo — o valor anterior permanece.
func TestUpdate_ZeroScoreIgnored(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "Pontuado", PontuacaoMaxima: 100})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.ChallengeInput{
		Titulo:          "Pontuado",
		PontuacaoMaxima: 0,
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(100), updated.PontuacaoMaxima)
}

// TestUpdate_RestampsUpdatedAt testa que a atualização carimba updatedAt sem
// tocar em createdAt.
func TestUpdate_RestampsUpdatedAt(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "Carimbo"})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.ChallengeInput{Titulo: "Carimbo Novo"})
	assert.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

// TestUpdate_NotFound testa 404 para id desconhecido.
func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Update(context.Background(), 999, domain.ChallengeInput{Titulo: "X"})
	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestDelete testa a remoção definitiva e o 404 para id inexistente.
func TestDelete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "Efêmero"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	err = repo.Delete(ctx, 999)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestSave_ConcurrentUniqueIDs testa que criações concorrentes nunca repetem ID.
func TestSave_ConcurrentUniqueIDs(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	const workers = 50
	ids := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Save(ctx, domain.ChallengeInput{Titulo: "Concorrente"})
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID duplicado emitido: %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
