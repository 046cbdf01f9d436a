package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// Cursor is a keyset position: the ordering timestamp plus the row id as a
// tie breaker.
type Cursor struct {
	Time time.Time
	ID   int64
}

func (c Cursor) Encode() *string {
	b, _ := json.Marshal(c)
	s := base64.StdEncoding.EncodeToString(b)
	return &s
}

func Decode(s *string) (*Cursor, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(*s)
	if err != nil {
		return nil, err
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
