package middleware

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// TelegramInitData проверяет init_data от Telegram Mini App и кладет
// пользователя в контекст. Заголовок не обязателен: анонимный доступ допустим,
// личность тогда берется из user_id query-параметра (или отсутствует).
func TelegramInitData() gin.HandlerFunc {
	return func(c *gin.Context) {
		initDataQuery := c.GetHeader("init_data")
		if initDataQuery == "" {
			c.Next()
			return
		}

		token := os.Getenv("BOT_TOKEN")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		// Disable expiration check
		expIn := time.Duration(0)

		if err := initdata.Validate(initDataQuery, token, expIn); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Invalid init data: %v", err)})
			return
		}

		parsedData, err := initdata.Parse(initDataQuery)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to parse init data: %v", err)})
			return
		}

		if os.Getenv("DEBUG") == "true" {
			fmt.Printf("[DEBUG] Validated init data, user: %+v\n", parsedData.User)
		}

		c.Set("user", parsedData.User)
		c.Next()
	}
}
