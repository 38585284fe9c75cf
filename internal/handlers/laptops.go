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

// LaptopHandler serves laptop CRUD. The same handler backs both API versions;
// only the injected service (raw-SQL with cache vs ORM) differs.
type LaptopHandler struct {
	service *services.LaptopService
	log     *zap.Logger
}

type laptopRequest struct {
	Name    *string  `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required"`
	Stock   *int     `json:"stock" validate:"required,gte=0"`
	BrandID *uint    `json:"brand_id" validate:"required"`
}

func (r laptopRequest) model() models.Laptop {
	return models.Laptop{
		Name:    *r.Name,
		Price:   *r.Price,
		Stock:   *r.Stock,
		BrandID: *r.BrandID,
	}
}

// NewLaptopHandler wires a handler over the supplied laptop service.
func NewLaptopHandler(service *services.LaptopService) (*LaptopHandler, error) {
	if service == nil {
		return nil, errors.New("laptop handler: service is required")
	}
	return &LaptopHandler{service: service, log: logger.WithModule("laptop")}, nil
}

// GET /api/v{1,2}/laptop
func (h *LaptopHandler) List(c *gin.Context) {
	data, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	response.Success(c, data)
}

// POST /api/v{1,2}/laptop
func (h *LaptopHandler) Create(c *gin.Context) {
	var body laptopRequest
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

// PUT /api/v{1,2}/laptop/:id
func (h *LaptopHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var body laptopRequest
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

// DELETE /api/v{1,2}/laptop/:id
func (h *LaptopHandler) Delete(c *gin.Context) {
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

func (h *LaptopHandler) fail(c *gin.Context, operation string, err error) {
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
