package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/errors"
)

// TransactionIDKey names the gin context entry carrying the per-request
// transaction id. The transaction middleware populates it before any handler
// runs.
const TransactionIDKey = "transactionID"

// StatusSuccess is the envelope status reported on every successful response.
const StatusSuccess = "00000"

// Envelope is the uniform wire shape applied to every API response. Status is
// the string "00000" on success and the numeric HTTP status on errors, so it
// is typed loosely on purpose.
type Envelope struct {
	Status        any    `json:"status"`
	Message       string `json:"message"`
	Data          any    `json:"data,omitempty"`
	Error         string `json:"error,omitempty"`
	TransactionID string `json:"transaction_id"`
}

// Success writes a 200 envelope wrapping the handler payload.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Status:        StatusSuccess,
		Message:       "Success",
		Data:          data,
		TransactionID: c.GetString(TransactionIDKey),
	})
}

// Error classifies err and writes the matching error envelope. Anything that
// is not an AppError is reported as a plain 500 so internals never leak.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, Envelope{
		Status:        status,
		Message:       appErr.Message,
		Error:         http.StatusText(status),
		TransactionID: c.GetString(TransactionIDKey),
	})
}
