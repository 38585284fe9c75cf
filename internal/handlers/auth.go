package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	iauth "github.com/zhafranafif/Assignment4-ZhafranAfif/internal/auth"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/services"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	accounts *services.AccountService
	jwt      *iauth.JWTService
	log      *zap.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=8"`
	Password string `json:"password" validate:"required,accountpassword"`
}

// loginResponse carries the issued token alongside a fixed message.
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// NewAuthHandler wires login/registration over the account and JWT services.
func NewAuthHandler(accounts *services.AccountService, jwt *iauth.JWTService) (*AuthHandler, error) {
	if accounts == nil {
		return nil, errors.New("auth handler: account service is required")
	}
	if jwt == nil {
		return nil, errors.New("auth handler: jwt service is required")
	}
	return &AuthHandler{accounts: accounts, jwt: jwt, log: logger.WithModule("auth")}, nil
}

// POST /api/v1/laptop/login
//
// Bad credentials answer 404, not 401: the 401 class is reserved for missing
// or invalid bearer tokens on protected routes.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.NewBadRequest("invalid JSON payload"))
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		h.fail(c, "login", err)
		return
	}

	token, err := h.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		h.fail(c, "login", err)
		return
	}

	response.Success(c, loginResponse{Message: "Login successful", Token: token})
}

// POST /api/v1/laptop/register
func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.accounts.Register(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	response.Success(c, message)
}

func (h *AuthHandler) fail(c *gin.Context, operation string, err error) {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode >= 500 {
		h.log.Error("operation failed",
			zap.String("operation", operation),
			zap.String("transaction_id", c.GetString(response.TransactionIDKey)),
			zap.Error(err),
		)
	}
	response.Error(c, err)
}
