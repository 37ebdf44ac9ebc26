package identity

import (
	"strconv"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// Resolve возвращает идентификатор пользователя: (1) аутентифицированный
// пользователь из init_data, (2) query-параметр user_id. Других источников
// нет; отсутствие — валидное анонимное состояние. Не кэшируется: личность
// хоста стабильна в течение жизни страницы.
func Resolve(c *gin.Context) (int64, bool) {
	if v, exists := c.Get("user"); exists {
		if user, ok := v.(initdata.User); ok && user.ID != 0 {
			return user.ID, true
		}
	}

	if raw := c.Query("user_id"); raw != "" {
		// Неположительные id не считаются личностью: 0 — анонимный
		// сентинель.
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			return id, true
		}
	}

	return 0, false
}
