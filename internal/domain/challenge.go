package domain

import (
	"context"
	"time"
)

// Challenge representa o desafio de sustentabilidade (a Entidade principal).
// Os nomes JSON seguem o contrato da API consumida pelo dashboard.
type Challenge struct {
	ID               int       `json:"id"`
	Titulo           string    `json:"titulo"`
	Descricao        string    `json:"descricao"`
	NivelDificuldade string    `json:"nivelDificuldade"` // Ex: "FACIL", "MEDIO", "DIFICIL"
	Categoria        string    `json:"categoria"`        // Ex: "AGUA", "TRANSPORTE", "ENERGIA"
	PontuacaoMaxima  float64   `json:"pontuacaoMaxima"`
	TempoEstimado    float64   `json:"tempoEstimado"` // Duração estimada em dias
	StatusAtivo      bool      `json:"statusAtivo"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ChallengeInput representa o payload de entrada para criação e atualização.
// Na atualização, apenas campos com valor "verdadeiro" (não-zero) sobrescrevem
// o registro existente; campos ausentes mantêm o valor anterior.
type ChallengeInput struct {
	Titulo           string  `json:"titulo"`
	Descricao        string  `json:"descricao"`
	NivelDificuldade string  `json:"nivelDificuldade"`
	Categoria        string  `json:"categoria"`
	PontuacaoMaxima  float64 `json:"pontuacaoMaxima"`
	TempoEstimado    float64 `json:"tempoEstimado"`
}

// --- Interfaces de Contrato (O CORAÇÃO DA ARQUITETURA LIMPA) ---

// ChallengeService é a interface que a camada de Serviço (Business Logic) DEVE implementar.
// Ela define o que o Handler (Camada API) pode pedir para a camada de Serviço fazer.
type ChallengeService interface {
	ListChallenges(ctx context.Context) ([]Challenge, error)
	GetChallengeByID(ctx context.Context, id int) (Challenge, error)
	CreateChallenge(ctx context.Context, input ChallengeInput) (Challenge, error)
	UpdateChallenge(ctx context.Context, id int, input ChallengeInput) (Challenge, error)
	DeleteChallenge(ctx context.Context, id int) error
}

// ChallengeRepository é a interface que a camada de Repositório (Data Access) DEVE implementar.
// Ela define o que a camada de Serviço pode pedir para a camada de Armazenamento fazer.
// O armazenamento é volátil (em memória) e protegido por lock — os IDs são um
// contador monotônico que nunca é reutilizado durante a vida do processo.
type ChallengeRepository interface {
	FindAll(ctx context.Context) ([]Challenge, error)
	FindByID(ctx context.Context, id int) (Challenge, error)
	Save(ctx context.Context, input ChallengeInput) (Challenge, error)
	Update(ctx context.Context, id int, input ChallengeInput) (Challenge, error)
	Delete(ctx context.Context, id int) error
}
