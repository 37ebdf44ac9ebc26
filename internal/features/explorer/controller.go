package explorer

import (
	"context"
	"strings"
	"time"

	apperrors "hatch-egg-webapp/internal/common/errors"
	"hatch-egg-webapp/internal/common/logger"
	"hatch-egg-webapp/internal/platform/eggchain"
)

// Сообщения области результатов.
const (
	msgEmptyQuery    = "Please enter an egg ID or username"
	msgGenericError  = "Failed to fetch"
	msgNoIdentity    = "Unable to determine user. Please open through Telegram bot."
	msgNoEggsSentYet = "You haven't sent any eggs yet"
)

// Client — подмножество eggchain-клиента, нужное explorer'у.
type Client interface {
	GetEgg(ctx context.Context, eggID string) (*eggchain.Egg, error)
	GetUserByUsername(ctx context.Context, username string) (*eggchain.UserProfile, error)
	GetUserEggs(ctx context.Context, userID int64) (*eggchain.UserEggs, error)
}

// Cache — опциональный короткоживущий кэш запросов к реестру.
type Cache interface {
	GetEgg(ctx context.Context, eggID string) (*eggchain.Egg, error)
	SetEgg(ctx context.Context, egg *eggchain.Egg) error
	GetProfile(ctx context.Context, username string) (*eggchain.UserProfile, error)
	SetProfile(ctx context.Context, p *eggchain.UserProfile) error
}

// Controller диспетчеризует поиск и владеет проекцией результатов в
// view-модели. Состояние области живет в Region соответствующей сессии.
type Controller struct {
	client Client
	cache  Cache // nil, если кэш отключен
	now    func() time.Time
}

func NewController(client Client, cache Cache) *Controller {
	return &Controller{client: client, cache: cache, now: time.Now}
}

// Search разбирает запрос и заменяет область результатов целиком:
// префикс @ — поиск пользователя по username, иначе — яйца по id.
// Пустой запрос — ошибка валидации без обращения к сети.
func (c *Controller) Search(ctx context.Context, r *Region, query string) View {
	q := strings.TrimSpace(query)
	if q == "" {
		r.fail(msgEmptyQuery)
		return r.Snapshot()
	}

	if strings.HasPrefix(q, "@") {
		c.searchUser(ctx, r, strings.TrimPrefix(q, "@"))
	} else {
		c.searchEgg(ctx, r, q)
	}
	return r.Snapshot()
}

func (c *Controller) searchUser(ctx context.Context, r *Region, username string) {
	gen := r.begin(false)

	profile, err := c.lookupProfile(ctx, username)
	if err != nil {
		c.commitError(r, gen, err)
		return
	}

	view := newProfileView(c.now(), profile)
	applied := r.commit(gen, func(r *Region) {
		r.state = StateProfile
		r.profile = view
		id := profile.UserID
		r.viewedUserID = &id
	})
	if !applied {
		logger.Debug().Str("username", username).Msg("Dropped stale profile result")
	}
}

func (c *Controller) searchEgg(ctx context.Context, r *Region, eggID string) {
	// Панель истории профиля и просматриваемый пользователь сбрасываются
	// до запроса: карточка яйца и профиль взаимоисключающие.
	gen := r.begin(true)

	egg, err := c.lookupEgg(ctx, eggID)
	if err != nil {
		c.commitError(r, gen, err)
		return
	}

	view := newEggView(c.now(), egg)
	applied := r.commit(gen, func(r *Region) {
		r.state = StateEgg
		r.egg = view
	})
	if !applied {
		logger.Debug().Str("egg_id", eggID).Msg("Dropped stale egg result")
	}
}

func (c *Controller) commitError(r *Region, gen uint64, err error) {
	message := msgGenericError
	if appErr, ok := apperrors.AsAppError(err); ok && appErr.Message != "" {
		message = appErr.Message
	}
	r.commit(gen, func(r *Region) {
		r.state = StateError
		r.message = message
	})
}

func (c *Controller) lookupEgg(ctx context.Context, eggID string) (*eggchain.Egg, error) {
	if c.cache != nil {
		if egg, err := c.cache.GetEgg(ctx, eggID); err == nil && egg != nil {
			return egg, nil
		}
	}

	egg, err := c.client.GetEgg(ctx, eggID)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.SetEgg(ctx, egg); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache egg lookup")
		}
	}
	return egg, nil
}

func (c *Controller) lookupProfile(ctx context.Context, username string) (*eggchain.UserProfile, error) {
	if c.cache != nil {
		if p, err := c.cache.GetProfile(ctx, username); err == nil && p != nil {
			return p, nil
		}
	}

	p, err := c.client.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.SetProfile(ctx, p); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache profile lookup")
		}
	}
	return p, nil
}

// MyEggs загружает собственные отправленные яйца пользователя. Список
// подавляется, пока открыт профиль другого пользователя.
func (c *Controller) MyEggs(ctx context.Context, r *Region, selfID int64) MyEggsView {
	if viewed, ok := r.ViewedUserID(); ok && viewed != selfID {
		return MyEggsView{Suppressed: true}
	}

	if selfID == 0 {
		return MyEggsView{Error: msgNoIdentity}
	}

	eggs, err := c.client.GetUserEggs(ctx, selfID)
	if err != nil {
		message := msgGenericError
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Message != "" {
			message = appErr.Message
		}
		return MyEggsView{Error: message}
	}

	if len(eggs.Eggs) == 0 {
		return MyEggsView{Empty: msgNoEggsSentYet}
	}

	now := c.now()
	items := make([]EggItemView, 0, len(eggs.Eggs))
	for i := range eggs.Eggs {
		items = append(items, newEggItemView(now, &eggs.Eggs[i]))
	}
	return MyEggsView{Eggs: items}
}
