package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/models"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/internal/services"
	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/logger"
	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

// PhonebookHandler serves phonebook CRUD for both API versions.
type PhonebookHandler struct {
	service *services.PhonebookService
	log     *zap.Logger
}

type phonebookRequest struct {
	Name   *string `json:"name" validate:"required"`
	Number *string `json:"number" validate:"required"`
}

func (r phonebookRequest) model() models.PhonebookEntry {
	return models.PhonebookEntry{
		Name:   *r.Name,
		Number: *r.Number,
	}
}

// NewPhonebookHandler wires a handler over the supplied phonebook service.
func NewPhonebookHandler(service *services.PhonebookService) (*PhonebookHandler, error) {
	if service == nil {
		return nil, errors.New("phonebook handler: service is required")
	}
	return &PhonebookHandler{service: service, log: logger.WithModule("phonebook")}, nil
}

// GET /api/v{1,2}/phonebook
func (h *PhonebookHandler) List(c *gin.Context) {
	data, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, data)
}

// POST /api/v{1,2}/phonebook
func (h *PhonebookHandler) Create(c *gin.Context) {
	var body phonebookRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.service.Create(c.Request.Context(), body.model())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	response.Success(c, message)
}

// PUT /api/v{1,2}/phonebook/:id
func (h *PhonebookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body phonebookRequest
	if !bindAndValidate(c, &body) {
		return
	}

	message, err := h.service.Update(c.Request.Context(), id, body.model())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	response.Success(c, message)
}

// DELETE /api/v{1,2}/phonebook/:id
func (h *PhonebookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	message, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "delete", err)
		return
	}
	response.Success(c, message)
}

func (h *PhonebookHandler) fail(c *gin.Context, operation string, err error) {
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
