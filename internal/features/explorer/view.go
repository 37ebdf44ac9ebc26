package explorer

import (
	"strconv"
	"sync"
	"time"

	"hatch-egg-webapp/internal/platform/eggchain"
)

// StateKind — состояние области результатов explorer.
type StateKind string

const (
	StateIdle    StateKind = "idle"
	StateLoading StateKind = "loading"
	StateError   StateKind = "error"
	StateEgg     StateKind = "egg"
	StateProfile StateKind = "profile"
)

// Tab — вкладка истории яиц в профиле.
type Tab string

const (
	TabSent    Tab = "sent"
	TabHatched Tab = "hatched"
)

// UserRef — ссылка на пользователя в карточке; клик переотправляет поиск.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Query возвращает поисковый запрос для перехода по ссылке.
func (u UserRef) Query() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return ""
}

// Label — отображаемое имя ссылки.
func (u UserRef) Label() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return userIDLabel(u.ID)
}

// EggItemView — строка списка яиц (мои яйца, табы профиля).
type EggItemView struct {
	EggID      string   `json:"egg_id"`
	ShortID    string   `json:"short_id"`
	Status     string   `json:"status"`
	StatusText string   `json:"status_text"`
	SentAt     string   `json:"sent_at,omitempty"`
	SentAgo    string   `json:"sent_ago,omitempty"`
	HatchedAt  string   `json:"hatched_at,omitempty"`
	HatchedAgo string   `json:"hatched_ago,omitempty"`
	Sender     *UserRef `json:"sender,omitempty"`
	HatchedBy  *UserRef `json:"hatched_by,omitempty"`
}

// EggView — карточка одного яйца.
type EggView struct {
	EggID      string   `json:"egg_id"`
	ShortID    string   `json:"short_id"`
	Status     string   `json:"status"`
	StatusText string   `json:"status_text"`
	Sender     UserRef  `json:"sender"`
	SentAt     string   `json:"sent_at"`
	SentAgo    string   `json:"sent_ago,omitempty"`
	HatchedBy  *UserRef `json:"hatched_by,omitempty"`
	HatchedAt  string   `json:"hatched_at,omitempty"`
	HatchedAgo string   `json:"hatched_ago,omitempty"`
}

// ProfileView — профиль пользователя с историей яиц в двух вкладках.
// Переключение вкладок — чисто локальное состояние, без перезапроса.
type ProfileView struct {
	UserID       int64         `json:"user_id"`
	Username     string        `json:"username,omitempty"`
	TotalSent    int64         `json:"total_sent"`
	TotalHatched int64         `json:"total_hatched"`
	SentEggs     []EggItemView `json:"sent_eggs"`
	HatchedEggs  []EggItemView `json:"hatched_eggs"`
	ActiveTab    Tab           `json:"active_tab"`
}

// View — снимок области результатов для рендера. Область всегда заменяется
// целиком, частичных патчей нет.
type View struct {
	State   StateKind    `json:"state"`
	Message string       `json:"message,omitempty"`
	Egg     *EggView     `json:"egg,omitempty"`
	Profile *ProfileView `json:"profile,omitempty"`
}

// MyEggsView — независимый список собственных яиц пользователя.
type MyEggsView struct {
	Suppressed bool          `json:"suppressed,omitempty"`
	Error      string        `json:"error,omitempty"`
	Empty      string        `json:"empty,omitempty"`
	Eggs       []EggItemView `json:"eggs,omitempty"`
}

// Region — область результатов конкретной сессии. Машина состояний
// Idle → Loading → {Error, Egg, Profile}; любой новый поиск возвращает в
// Loading из любого состояния. Монотонный счетчик поколений отбрасывает
// ответы, обогнанные более новым поиском: применяется последний выданный
// поиск, а не последний пришедший ответ.
type Region struct {
	mu           sync.Mutex
	gen          uint64
	state        StateKind
	message      string
	egg          *EggView
	profile      *ProfileView
	viewedUserID *int64
}

func NewRegion() *Region {
	return &Region{state: StateIdle}
}

// begin переводит область в Loading и выдает поколение нового поиска.
// При поиске яйца панель истории профиля скрывается и просматриваемый
// пользователь сбрасывается еще до запроса: виды взаимоисключающие.
func (r *Region) begin(clearProfile bool) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	r.state = StateLoading
	r.message = ""
	r.egg = nil
	if clearProfile {
		r.profile = nil
		r.viewedUserID = nil
	}
	return r.gen
}

// commit применяет результат поиска, только если его поколение все еще
// последнее. Устаревший ответ отбрасывается.
func (r *Region) commit(gen uint64, apply func(*Region)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return false
	}
	apply(r)
	return true
}

// fail рендерит ошибку валидации без обращения к сети и без нового
// поколения поиска.
func (r *Region) fail(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = StateError
	r.message = message
	r.egg = nil
	r.profile = nil
}

// SwitchTab переключает вкладку истории на уже загруженных данных.
func (r *Region) SwitchTab(tab Tab) bool {
	if tab != TabSent && tab != TabHatched {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateProfile || r.profile == nil {
		return false
	}
	r.profile.ActiveTab = tab
	return true
}

// ViewedUserID возвращает id пользователя, чей профиль сейчас открыт.
func (r *Region) ViewedUserID() (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.viewedUserID == nil {
		return 0, false
	}
	return *r.viewedUserID, true
}

// Snapshot возвращает текущий вид области.
func (r *Region) Snapshot() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := View{State: r.state, Message: r.message}
	if r.egg != nil {
		eggCopy := *r.egg
		v.Egg = &eggCopy
	}
	if r.profile != nil {
		profileCopy := *r.profile
		v.Profile = &profileCopy
	}
	return v
}

// Проекции записей апстрима в view-модели.

func newEggView(now time.Time, egg *eggchain.Egg) *EggView {
	v := &EggView{
		EggID:      egg.EggID,
		ShortID:    shortID(egg.EggID, 8),
		Status:     statusOf(egg),
		StatusText: statusTextOf(egg),
		Sender:     UserRef{ID: egg.SenderID, Username: egg.SenderUsername, Avatar: egg.SenderAvatar},
		SentAt:     formatTimestamp(egg.TimestampSent),
	}
	if !egg.TimestampSent.IsZero() {
		v.SentAgo = TimeAgo(now, egg.TimestampSent)
	}
	if egg.Hatched() {
		v.HatchedBy = &UserRef{ID: *egg.HatchedBy, Username: egg.HatchedByUsername, Avatar: egg.HatchedByAvatar}
		if egg.TimestampHatched != nil {
			v.HatchedAt = formatTimestamp(*egg.TimestampHatched)
			v.HatchedAgo = TimeAgo(now, *egg.TimestampHatched)
		} else {
			v.HatchedAt = "—"
		}
	}
	return v
}

func newEggItemView(now time.Time, egg *eggchain.Egg) EggItemView {
	item := EggItemView{
		EggID:      egg.EggID,
		ShortID:    shortID(egg.EggID, 12),
		Status:     statusOf(egg),
		StatusText: statusTextOf(egg),
		SentAt:     formatTimestamp(egg.TimestampSent),
	}
	if !egg.TimestampSent.IsZero() {
		item.SentAgo = TimeAgo(now, egg.TimestampSent)
	}
	if egg.Hatched() {
		item.HatchedBy = &UserRef{ID: *egg.HatchedBy, Username: egg.HatchedByUsername}
		if egg.TimestampHatched != nil {
			item.HatchedAt = formatTimestamp(*egg.TimestampHatched)
			item.HatchedAgo = TimeAgo(now, *egg.TimestampHatched)
		}
	}
	return item
}

// newHatchedItemView — строка вкладки "Hatched Eggs": там показывается
// отправитель, а не вылупивший.
func newHatchedItemView(now time.Time, egg *eggchain.Egg) EggItemView {
	item := newEggItemView(now, egg)
	item.Sender = &UserRef{ID: egg.SenderID, Username: egg.SenderUsername}
	return item
}

func newProfileView(now time.Time, p *eggchain.UserProfile) *ProfileView {
	v := &ProfileView{
		UserID:       p.UserID,
		Username:     p.Username,
		TotalSent:    p.TotalSent,
		TotalHatched: p.TotalHatched,
		SentEggs:     make([]EggItemView, 0, len(p.EggsSent)),
		HatchedEggs:  make([]EggItemView, 0, len(p.EggsHatched)),
		ActiveTab:    TabSent,
	}
	for i := range p.EggsSent {
		v.SentEggs = append(v.SentEggs, newEggItemView(now, &p.EggsSent[i]))
	}
	for i := range p.EggsHatched {
		v.HatchedEggs = append(v.HatchedEggs, newHatchedItemView(now, &p.EggsHatched[i]))
	}
	return v
}

// Статус яйца — чистая функция наличия hatched_by; третьего состояния нет.

func statusOf(egg *eggchain.Egg) string {
	if egg.Hatched() {
		return "hatched"
	}
	return "pending"
}

func statusTextOf(egg *eggchain.Egg) string {
	if egg.Hatched() {
		return "Hatched"
	}
	return "Pending"
}

func shortID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n] + "..."
}

func userIDLabel(id int64) string {
	return "User ID: " + strconv.FormatInt(id, 10)
}
