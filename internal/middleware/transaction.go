package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhafranafif/Assignment4-ZhafranAfif/pkg/response"
)

// TransactionHeader is the inbound header clients may use to supply their own
// correlation id.
const TransactionHeader = "transactionid"

// transactionAppID prefixes every generated transaction id.
const transactionAppID = "A302"

// Transaction ensures every request carries a transaction id: the inbound
// header value when present, otherwise a generated one. The id is exposed to
// handlers through the gin context and echoed in the response envelope.
func Transaction() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(TransactionHeader))
		if id == "" {
			id = newTransactionID()
		}

		c.Set(response.TransactionIDKey, id)
		c.Next()
	}
}

// newTransactionID builds an id of the form A302<YYMMDDHHmmssSSS>0.
func newTransactionID() string {
	now := time.Now()
	stamp := now.Format("060102150405") + millis(now)
	return transactionAppID + stamp + "0"
}

func millis(t time.Time) string {
	ms := t.Nanosecond() / int(time.Millisecond)
	digits := [3]byte{
		byte('0' + ms/100),
		byte('0' + (ms/10)%10),
		byte('0' + ms%10),
	}
	return string(digits[:])
}
