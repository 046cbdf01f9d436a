package storage

import (
	"errors"
	"time"

	"blogd/pkg/pagination"
)

type Direction int

const (
	DirectionUnspecified Direction = iota
	DirectionAfter
	DirectionBefore
)

var (
	ErrDirectionUnset = errors.New("direction must be set")
)

type GetPostsParams struct {
	Cursor          pagination.Cursor
	Direction       Direction
	Limit           int
	PublishedBefore time.Time
}
