package testutil

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hostel/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func TestAPIClient(t *testing.T) {
	engine := gin.New()
	engine.POST("/api/v1/echo", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error(), ""))
			return
		}
		body["auth"] = c.GetHeader("Authorization")
		c.JSON(http.StatusCreated, dto.NewSuccessResponse(body))
	})
	engine.GET("/api/v1/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "no such thing", ""))
	})

	client := NewAPIClient(engine, "/api/v1")

	t.Run("decodes data and sends token", func(t *testing.T) {
		w := client.WithToken("abc").Do(t, http.MethodPost, "/echo", map[string]string{"room": "101"})
		data := RequireData[map[string]string](t, w, http.StatusCreated)
		assert.Equal(t, "101", data["room"])
		assert.Equal(t, "Bearer abc", data["auth"])
		assert.Empty(t, client.Token, "WithToken must not mutate the original")
	})

	t.Run("asserts error code", func(t *testing.T) {
		AssertError(t, client.Do(t, http.MethodGet, "/missing", nil), http.StatusNotFound, dto.ErrCodeNotFound)
	})
}
