package challenge

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
	"sustentaplus/internal/pkg/middleware"
)

// Handler agrupa todos os métodos de Handler de desafios.
type Handler struct {
	Service domain.ChallengeService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.ChallengeService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		// Sucesso
		if data == nil {
			// 204 No Content: sem corpo e sem Content-Type
			w.WriteHeader(successStatus)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Debug("Requisição concluída com sucesso.", map[string]interface{}{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     successStatus,
			"request_id": middleware.GetRequestIDFromContext(r.Context()),
		})

		if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
			h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
		}
		return
	}

	// Tratamento de erros: tradução do erro de domínio para o contrato HTTP.
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error("Erro de Servidor no módulo de desafios:", err)
	} else {
		// Erros de cliente (4xx) são logged como debug
		h.Logger.Debug("Requisição rejeitada.", map[string]interface{}{
			"path":     r.URL.Path,
			"status":   status,
			"category": category,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Message: message})
}

// challengeID extrai e converte o path var {id} da rota.
// A rota restringe {id} a dígitos, então a conversão não falha na prática.
func challengeID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// ListChallengesHandler lida com a requisição GET /api/desafios.
// @Summary Lista todos os desafios
// @Description Retorna os desafios em ordem de criação.
// @Tags desafios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Challenge
// @Failure 401 {object} domain.ErrorResponse "Token ausente"
// @Failure 403 {object} domain.ErrorResponse "Token inválido ou expirado"
// @Router /api/desafios [get]
func (h *Handler) ListChallengesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	challenges, err := h.Service.ListChallenges(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, challenges, nil, http.StatusOK)
}

// GetChallengeByIDHandler lida com a requisição GET /api/desafios/{id}.
// @Summary Busca um desafio pelo ID
// @Tags desafios
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do desafio"
// @Success 200 {object} domain.Challenge
// @Failure 404 {object} domain.ErrorResponse "Desafio não encontrado"
// @Router /api/desafios/{id} [get]
func (h *Handler) GetChallengeByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	challenge, err := h.Service.GetChallengeByID(ctx, challengeID(r))
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, challenge, nil, http.StatusOK)
}

// CreateChallengeHandler lida com a requisição POST /api/desafios.
// @Summary Cria um novo desafio
// @Tags desafios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param challenge body domain.ChallengeInput true "Dados do desafio"
// @Success 201 {object} domain.Challenge
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /api/desafios [post]
func (h *Handler) CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Identidade verificada pelo middleware — registrada para auditoria.
	if claims, ok := middleware.GetUserClaimsFromContext(ctx); ok {
		h.Logger.Info("Criação de desafio solicitada.", map[string]interface{}{
			"user_id":  claims.UserID,
			"username": claims.Username,
		})
	}

	var input domain.ChallengeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Invalid data"), http.StatusCreated)
		return
	}

	created, err := h.Service.CreateChallenge(ctx, input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// UpdateChallengeHandler lida com a requisição PUT /api/desafios/{id}.
// Campos ausentes ou com valor zero no payload mantêm o valor armazenado
// (sobrescrita parcial).
// @Summary Atualiza um desafio existente
// @Tags desafios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do desafio"
// @Param challenge body domain.ChallengeInput true "Campos a sobrescrever"
// @Success 200 {object} domain.Challenge
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Desafio não encontrado"
// @Router /api/desafios/{id} [put]
func (h *Handler) UpdateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input domain.ChallengeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Invalid data"), http.StatusOK)
		return
	}

	updated, err := h.Service.UpdateChallenge(ctx, challengeID(r), input)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}

// DeleteChallengeHandler lida com a requisição DELETE /api/desafios/{id}.
// @Summary Remove um desafio
// @Tags desafios
// @Security BearerAuth
// @Param id path int true "ID do desafio"
// @Success 204 "Removido"
// @Failure 404 {object} domain.ErrorResponse "Desafio não encontrado"
// @Router /api/desafios/{id} [delete]
func (h *Handler) DeleteChallengeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Service.DeleteChallenge(ctx, challengeID(r)); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	// 204 No Content, corpo vazio
	h.handleServiceResponse(w, r, nil, nil, http.StatusNoContent)
}
