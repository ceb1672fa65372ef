package auth

import (
	"encoding/json"
	"net/http"

	"sustentaplus/internal/domain"
	apperror "sustentaplus/internal/errors"
	"sustentaplus/internal/pkg/logger"
)

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler agrupa todos os métodos de Handler de autenticação.
type Handler struct {
	Service domain.AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse padroniza o tratamento de erros e respostas HTTP.
// Sucesso escreve o payload como JSON; falha traduz o erro de domínio para o
// status correspondente com o corpo {"message": ...} do contrato.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	// Mapeamento de Erros de Negócio para Status HTTP
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de autenticação:", err)
	} else {
		h.Logger.Debug("Requisição de autenticação rejeitada.", map[string]interface{}{
			"path":     r.URL.Path,
			"status":   status,
			"category": category,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Message: message})
}

// RegisterHandler lida com a requisição POST /api/auth/register.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário e emite um JWT com validade de 24h.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Credenciais de registro (username, email e senha)"
// @Success 200 {object} domain.AuthResponse "Usuário registrado e token emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou username já em uso"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /api/auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg domain.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Invalid data"), http.StatusOK)
		return
	}

	session, err := h.Service.Register(ctx, reg)
	if err != nil {
		// ConflictError (username duplicado) -> 400, ValidationError -> 400
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	// Registro já autentica: o token sai junto com a confirmação.
	h.handleServiceResponse(w, r, domain.AuthResponse{
		Token:    session.Token,
		Username: session.Username,
		Message:  "User registered successfully",
	}, nil, http.StatusOK)
}

// LoginHandler lida com a requisição POST /api/auth/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe username/senha, verifica a validade e emite um JSON Web Token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credenciais do usuário (username e senha)"
// @Success 200 {object} domain.AuthResponse "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /api/auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Invalid data"), http.StatusOK)
		return
	}

	session, err := h.Service.Login(ctx, loginReq.Username, loginReq.Password)
	if err != nil {
		// UnauthorizedError -> 401, ValidationError -> 400
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, domain.AuthResponse{
		Token:    session.Token,
		Username: session.Username,
		Message:  "Login successful",
	}, nil, http.StatusOK)
}
