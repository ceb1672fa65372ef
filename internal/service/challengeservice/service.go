package challengeservice

import (
	"context"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
)

// Limites do schema de desafio (payload de criação/atualização).
const (
	MaxTituloLength           = 200
	MaxDescricaoLength        = 2000
	MaxCategoriaLength        = 100
	MaxNivelDificuldadeLength = 20
)

// Service é a estrutura que implementa a interface domain.ChallengeService.
type Service struct {
	repo   domain.ChallengeRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Desafios.
func NewService(repo domain.ChallengeRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// ListChallenges retorna todos os desafios em ordem de inserção.
func (s *Service) ListChallenges(ctx context.Context) ([]domain.Challenge, error) {
	return s.repo.FindAll(ctx)
}

// GetChallengeByID busca um desafio; id desconhecido propaga NotFoundError (404).
func (s *Service) GetChallengeByID(ctx context.Context, id int) (domain.Challenge, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateChallenge valida o payload e delega a criação ao repositório, que
// atribui o ID e os timestamps.
func (s *Service) CreateChallenge(ctx context.Context, input domain.ChallengeInput) (domain.Challenge, error) {
	if err := s.validateInput(input); err != nil {
		return domain.Challenge{}, err
	}

	created, err := s.repo.Save(ctx, input)
	if err != nil {
		return domain.Challenge{}, err
	}

	s.logger.Info("Desafio criado.", map[string]interface{}{"id": created.ID, "titulo": created.Titulo})
	return created, nil
}

// UpdateChallenge valida o payload e delega a sobrescrita parcial (semântica
// truthy) ao repositório.
func (s *Service) UpdateChallenge(ctx context.Context, id int, input domain.ChallengeInput) (domain.Challenge, error) {
	if err := s.validateInput(input); err != nil {
		return domain.Challenge{}, err
	}

	return s.repo.Update(ctx, id, input)
}

// DeleteChallenge remove um desafio definitivamente.
func (s *Service) DeleteChallenge(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// validateInput aplica o schema do desafio. Os erros por campo são calculados
// e registrados em debug; o cliente recebe apenas o 400 genérico "Invalid data".
// Valores numéricos zero são tratados como ausentes (indistinguíveis no JSON),
// portanto apenas negativos são rejeitados.
func (s *Service) validateInput(input domain.ChallengeInput) error {
	fieldErrors := map[string]interface{}{}

	if input.Titulo == "" {
		fieldErrors["titulo"] = "Título é obrigatório"
	} else if len([]rune(input.Titulo)) > MaxTituloLength {
		fieldErrors["titulo"] = "Título deve ter no máximo 200 caracteres"
	}
	if len([]rune(input.Descricao)) > MaxDescricaoLength {
		fieldErrors["descricao"] = "Descrição deve ter no máximo 2000 caracteres"
	}
	if len([]rune(input.Categoria)) > MaxCategoriaLength {
		fieldErrors["categoria"] = "Categoria deve ter no máximo 100 caracteres"
	}
	if len([]rune(input.NivelDificuldade)) > MaxNivelDificuldadeLength {
		fieldErrors["nivelDificuldade"] = "Nível de dificuldade deve ter no máximo 20 caracteres"
	}
	if input.PontuacaoMaxima < 0 {
		fieldErrors["pontuacaoMaxima"] = "Pontuação deve ser positiva"
	}
	if input.TempoEstimado < 0 {
		fieldErrors["tempoEstimado"] = "Tempo estimado deve ser positivo"
	}

	if len(fieldErrors) > 0 {
		s.logger.Debug("Payload de desafio rejeitado na validação.", fieldErrors)
		return apperror.NewValidationError("Invalid data")
	}
	return nil
}
