package challengerepo

import (
	"context"
	"sync"
	"time"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
)

// ChallengeRepository implementa a interface domain.ChallengeRepository com um
// armazenamento em memória: um slice ordenado por inserção protegido por
// RWMutex e um contador monotônico de IDs. O conteúdo é intencionalmente
// volátil — reinicia junto com o processo.
type ChallengeRepository struct {
	mu         sync.RWMutex
	challenges []domain.Challenge
	nextID     int
	logger     logger.Logger
}

// NewChallengeRepository cria uma nova instância do repositório em memória.
func NewChallengeRepository(log logger.Logger) *ChallengeRepository {
	return &ChallengeRepository{
		challenges: []domain.Challenge{},
		nextID:     1,
		logger:     log,
	}
}

// Seed carrega os desafios iniciais de demonstração. O contador continua a
// partir do último ID semeado, preservando a monotonicidade.
func (r *ChallengeRepository) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.challenges = append(r.challenges,
		domain.Challenge{
			ID:               r.nextID,
			Titulo:           "Reduza o Consumo de Água",
			Descricao:        "Diminua o uso de água em casa por uma semana",
			NivelDificuldade: "FACIL",
			Categoria:        "AGUA",
			PontuacaoMaxima:  100,
			TempoEstimado:    7,
			StatusAtivo:      true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		domain.Challenge{
			ID:               r.nextID + 1,
			Titulo:           "Use Transporte Público",
			Descricao:        "Utilize apenas transporte público por 5 dias",
			NivelDificuldade: "MEDIO",
			Categoria:        "TRANSPORTE",
			PontuacaoMaxima:  200,
			TempoEstimado:    5,
			StatusAtivo:      true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	)
	r.nextID += 2

	r.logger.Info("Dados de demonstração carregados no repositório de desafios.", map[string]interface{}{"total": len(r.challenges)})
}

// FindAll retorna todos os desafios em ordem de inserção.
func (r *ChallengeRepository) FindAll(ctx context.Context) ([]domain.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Cópia defensiva: o slice interno nunca escapa do lock.
	result := make([]domain.Challenge, len(r.challenges))
	copy(result, r.challenges)

	return result, nil
}

// FindByID busca um desafio pelo ID (varredura linear, coleção pequena).
func (r *ChallengeRepository) FindByID(ctx context.Context, id int) (domain.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.challenges {
		if c.ID == id {
			return c, nil
		}
	}

	r.logger.Debug("Desafio não encontrado no repositório.", map[string]interface{}{"id": id})
	return domain.Challenge{}, apperror.NewNotFoundError("Challenge not found")
}

// Save insere um novo desafio: atribui o próximo valor do contador sob o lock,
// carimba createdAt = updatedAt = agora e ativa o registro. Campos opcionais
// ausentes ficam com o valor zero. O contador só cresce — IDs nunca são
// reutilizados durante a vida do processo, mesmo após deleções.
func (r *ChallengeRepository) Save(ctx context.Context, input domain.ChallengeInput) (domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	challenge := domain.Challenge{
		ID:               r.nextID,
		Titulo:           input.Titulo,
		Descricao:        input.Descricao,
		NivelDificuldade: input.NivelDificuldade,
		Categoria:        input.Categoria,
		PontuacaoMaxima:  input.PontuacaoMaxima,
		TempoEstimado:    input.TempoEstimado,
		StatusAtivo:      true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.nextID++

	r.challenges = append(r.challenges, challenge)

	r.logger.Debug("Desafio salvo no repositório.", map[string]interface{}{"id": challenge.ID, "titulo": challenge.Titulo})
	return challenge, nil
}

// Update sobrescreve o registro existente com semântica "truthy": apenas
// campos não-zero do input substituem o valor armazenado (titulo é sempre
// aplicado, pois chega validado como não-vazio). Consequência conhecida do
// contrato: uma atualização que envia pontuacaoMaxima = 0 é silenciosamente
// ignorada — o valor anterior permanece.
func (r *ChallengeRepository) Update(ctx context.Context, id int, input domain.ChallengeInput) (domain.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.challenges {
		if r.challenges[i].ID != id {
			continue
		}

		updated := r.challenges[i]
		updated.Titulo = input.Titulo
		if input.Descricao != "" {
			updated.Descricao = input.Descricao
		}
		if input.NivelDificuldade != "" {
			updated.NivelDificuldade = input.NivelDificuldade
		}
		if input.Categoria != "" {
			updated.Categoria = input.Categoria
		}
		if input.PontuacaoMaxima != 0 {
			updated.PontuacaoMaxima = input.PontuacaoMaxima
		}
		if input.TempoEstimado != 0 {
			updated.TempoEstimado = input.TempoEstimado
		}
		updated.UpdatedAt = time.Now()

		r.challenges[i] = updated

		r.logger.Debug("Desafio atualizado no repositório.", map[string]interface{}{"id": id})
		return updated, nil
	}

	r.logger.Debug("Tentativa de atualizar desafio inexistente.", map[string]interface{}{"id": id})
	return domain.Challenge{}, apperror.NewNotFoundError("Challenge not found")
}

// Delete remove o desafio permanentemente (sem soft-delete, sem tombstone).
func (r *ChallengeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.challenges {
		if r.challenges[i].ID == id {
			r.challenges = append(r.challenges[:i], r.challenges[i+1:]...)
			r.logger.Info("Desafio removido do repositório.", map[string]interface{}{"id": id})
			return nil
		}
	}

	return apperror.NewNotFoundError("Challenge not found")
}
