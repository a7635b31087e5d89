package datagrid

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
)

// Cursor is the composite key identifying the last row of a previously
// returned keyset page. Ties on CreatedAt are broken by ID, so the pair is
// totally ordered under (created_at DESC, id DESC).
//
// The JSON keys are deliberately short: the encoded token is opaque to
// clients and should not leak column names.
type Cursor struct {
	CreatedAt time.Time `json:"c"`
	ID        int64     `json:"i"`
}

// CursorFromParts assembles a cursor from its two transport fields.
//
// A cursor is only valid when both fields are present: a partial cursor is
// discarded entirely (nil, meaning first page) rather than used as a partial
// bound, which would silently skip or repeat rows.
func CursorFromParts(createdAt null.Time, id null.Int64) *Cursor {
	if !createdAt.Valid || !id.Valid {
		return nil
	}
	return &Cursor{CreatedAt: createdAt.Time, ID: id.Int64}
}

// Token encodes the cursor as an opaque base64 string for transport
// surfaces that prefer a single field over the two-part form.
func (c *Cursor) Token() *string {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil
	}

	encoded := base64.URLEncoding.EncodeToString(data)
	return &encoded
}

// DecodeToken decodes an opaque cursor token.
//
// Malformed tokens (bad base64, bad JSON, missing fields) decode to nil.
// An invalid cursor means "start from the beginning", never an error: the
// worst outcome of a corrupted token is a first page, not a failed render.
func DecodeToken(token string) *Cursor {
	if token == "" {
		return nil
	}

	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var raw struct {
		CreatedAt *time.Time `json:"c"`
		ID        *int64     `json:"i"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	// Same rule as CursorFromParts: both fields or nothing.
	if raw.CreatedAt == nil || raw.ID == nil {
		return nil
	}

	return &Cursor{CreatedAt: *raw.CreatedAt, ID: *raw.ID}
}
