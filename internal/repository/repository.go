package repository

import (
	"errors"

	"watbot/internal/domain"
)

// ErrDuplicateName is returned by Create when a WAT with the same name exists
var ErrDuplicateName = errors.New("a wat with that name already exists")

// WatRepository defines WAT data operations
type WatRepository interface {
	Create(name string, fileIDs []string) (*domain.Wat, error)
	Exists(name string) (bool, error)
	GetByName(name string) (*domain.Wat, error)
	GetByID(id int64) (*domain.Wat, error)
	ListAll() ([]domain.Wat, error)
	SearchByExpression(expression string) ([]domain.Wat, error)
	SetExpressions(name string, expressions []string) error
	Remove(id int64) (bool, error)
}
