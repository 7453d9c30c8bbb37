package document

import (
	"context"
	"errors"
)

type Kind string

const (
	KindUsers Kind = "users"
	KindTeams Kind = "teams"
	KindVotes Kind = "votes"
)

var Kinds = []Kind{KindUsers, KindTeams, KindVotes}

// ErrNotExist возвращается Backend.Read, если документ еще не создан
var ErrNotExist = errors.New("document does not exist")

// Backend хранит три документа целиком, без частичной записи.
type Backend interface {
	Read(ctx context.Context, kind Kind) ([]byte, error)
	Write(ctx context.Context, kind Kind, data []byte) error
}
