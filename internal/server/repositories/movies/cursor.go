package movies

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"filmoteka/internal/server/models"
)

// cursorPayload pins a position in the (created_at, id) sort order. It is
// serialized to base64 JSON so clients see an opaque token; only this
// package mints and parses it.
type cursorPayload struct {
	CreatedAt time.Time `json:"t"`
	ID        string    `json:"id"`
}

func encodeCursor(m *models.Movie) string {
	b, err := json.Marshal(cursorPayload{CreatedAt: m.CreatedAt, ID: m.ID})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeCursor(cursor string) (*cursorPayload, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	p := &cursorPayload{}
	if err := json.Unmarshal(b, p); err != nil {
		return nil, ErrInvalidCursor
	}
	if p.ID == "" {
		return nil, ErrInvalidCursor
	}
	return p, nil
}
