package auth

import (
	"time"

	"github.com/minhdn/gameshop/internal/domain/model"
)

// Strategy issues and verifies auth tokens carrying user identity and role.
type Strategy interface {
	IssueToken(userID int64, role model.Role) (string, error)
	ParseToken(token string) (int64, model.Role, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
