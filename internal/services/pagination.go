package services

import (
	"encoding/base64"
	"encoding/json"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	DirectionNext = "next"
	DirectionPrev = "prev"
)

// PageRequest is the caller-supplied pagination window.
type PageRequest struct {
	Cursor    string
	Direction string
	Limit     int
}

// Page is the envelope all list endpoints return. Items are always ordered
// newest first.
type Page[T any] struct {
	Items       []T    `json:"items"`
	HasNextPage bool   `json:"has_next_page"`
	HasPrevPage bool   `json:"has_prev_page"`
	NextCursor  string `json:"next_cursor,omitempty"`
	PrevCursor  string `json:"prev_cursor,omitempty"`
}

type cursorPayload struct {
	ID uint `json:"id"`
}

// EncodeCursor turns a row id into an opaque cursor.
func EncodeCursor(id uint) string {
	raw, _ := json.Marshal(cursorPayload{ID: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor. An empty cursor decodes to 0.
func DecodeCursor(cursor string) (uint, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, validationf("malformed cursor")
	}
	var payload cursorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, validationf("malformed cursor")
	}
	return payload.ID, nil
}

// Normalize clamps the limit and fills in direction defaults. It rejects
// unknown directions and cursors it cannot decode.
func (r *PageRequest) Normalize() (cursorID uint, err error) {
	if r.Limit <= 0 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit > MaxPageLimit {
		r.Limit = MaxPageLimit
	}
	if r.Direction == "" {
		r.Direction = DirectionNext
	}
	if r.Direction != DirectionNext && r.Direction != DirectionPrev {
		return 0, validationf("direction must be %q or %q", DirectionNext, DirectionPrev)
	}
	return DecodeCursor(r.Cursor)
}

// newPage assembles the envelope from a trimmed row window. ids must be the
// row ids in returned (descending) order; more reports whether the query
// saw rows beyond the window in the requested direction.
func newPage[T any](items []T, ids []uint, req PageRequest, more bool) Page[T] {
	page := Page[T]{Items: items}
	if items == nil {
		page.Items = []T{}
	}
	if len(ids) > 0 {
		page.PrevCursor = EncodeCursor(ids[0])
		page.NextCursor = EncodeCursor(ids[len(ids)-1])
	}
	if req.Direction == DirectionPrev {
		page.HasPrevPage = more
		page.HasNextPage = req.Cursor != ""
	} else {
		page.HasNextPage = more
		page.HasPrevPage = req.Cursor != ""
	}
	return page
}
