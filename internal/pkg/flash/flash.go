package flash

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	pkgredis "github.com/hoshgeldi/core/internal/pkg/redis"
)

const (
	cookieName = "hg_flash"
	keyPrefix  = "hg:flash:"
	ttl        = 10 * time.Minute
)

// Level classifies a flash message for display.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Message is a one-shot status line shown on the next rendered page.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Store keeps pending flash messages in Redis, keyed by an anonymous
// cookie so messages survive the redirect after a mutation.
type Store struct {
	rc *pkgredis.Client
}

func NewStore(rc *pkgredis.Client) *Store {
	return &Store{rc: rc}
}

// Add queues a message for the next page view of this browser.
func (s *Store) Add(c *gin.Context, level Level, text string) {
	if s == nil || s.rc == nil {
		return
	}
	id, err := c.Cookie(cookieName)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(cookieName, id, int(ttl.Seconds()), "/", "", false, true)
	}
	payload, err := json.Marshal(Message{Level: level, Text: text})
	if err != nil {
		return
	}
	ctx := c.Request.Context()
	key := keyPrefix + id
	if err := s.rc.Raw().RPush(ctx, key, payload).Err(); err != nil {
		return
	}
	s.rc.Raw().Expire(ctx, key, ttl)
}

// Consume returns and clears all pending messages for this browser.
func (s *Store) Consume(c *gin.Context) []Message {
	if s == nil || s.rc == nil {
		return nil
	}
	id, err := c.Cookie(cookieName)
	if err != nil || id == "" {
		return nil
	}
	ctx := c.Request.Context()
	key := keyPrefix + id
	raw, err := s.rc.Raw().LRange(ctx, key, 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return nil
	}
	_ = s.rc.Del(ctx, key)

	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err == nil {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
