package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

const jsonContentType = "application/json; charset=utf-8"

// OK encodes payload and writes it as a 200. The body is encoded before any
// header is written, so a payload that cannot be encoded becomes a 500
// instead of an empty 200.
func OK(c *gin.Context, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		abort(c, "http.encode_failed", http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	c.Data(http.StatusOK, jsonContentType, body)
}
