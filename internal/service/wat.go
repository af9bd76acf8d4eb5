package service

import (
	"fmt"
	"math/rand"
	"strings"

	"watbot/internal/domain"
	"watbot/internal/repository"
)

// WatService handles WAT business logic
type WatService struct {
	watRepo repository.WatRepository
}

// NewWatService creates a new WAT service
func NewWatService(watRepo repository.WatRepository) *WatService {
	return &WatService{watRepo: watRepo}
}

// Create stores a new WAT with the given image file IDs.
// File IDs must be ordered ascending by image size.
func (s *WatService) Create(name string, fileIDs []string) (*domain.Wat, error) {
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if len(fileIDs) == 0 {
		return nil, fmt.Errorf("file ids cannot be empty")
	}
	return s.watRepo.Create(name, fileIDs)
}

// Exists checks whether a WAT with the given name is stored
func (s *WatService) Exists(name string) (bool, error) {
	return s.watRepo.Exists(name)
}

// GetByName returns the WAT with the given name, or nil when absent
func (s *WatService) GetByName(name string) (*domain.Wat, error) {
	return s.watRepo.GetByName(name)
}

// ListAll returns every stored WAT
func (s *WatService) ListAll() ([]domain.Wat, error) {
	return s.watRepo.ListAll()
}

// SearchByExpression returns every WAT whose expressions contain the
// given expression exactly, normalized to lowercase
func (s *WatService) SearchByExpression(expression string) ([]domain.Wat, error) {
	return s.watRepo.SearchByExpression(strings.ToLower(strings.TrimSpace(expression)))
}

// Remove deletes a WAT by id
func (s *WatService) Remove(id int64) (bool, error) {
	return s.watRepo.Remove(id)
}

// SetExpressions replaces the expressions of the named WAT with the
// entries of a comma separated list, trimmed and lowercased.
func (s *WatService) SetExpressions(name, rawList string) error {
	parts := strings.Split(rawList, ",")
	expressions := make([]string, 0, len(parts))
	for _, p := range parts {
		expressions = append(expressions, strings.ToLower(strings.TrimSpace(p)))
	}
	return s.watRepo.SetExpressions(name, expressions)
}

// PickRandom resolves a free-text expression to a single WAT chosen
// uniformly at random. An empty expression selects among all WATs; a
// non-matching expression falls back to all WATs. Returns nil when the
// store is empty.
func (s *WatService) PickRandom(expression string) (*domain.Wat, error) {
	expression = strings.ToLower(strings.TrimSpace(expression))

	var wats []domain.Wat
	var err error

	if expression != "" {
		wats, err = s.watRepo.SearchByExpression(expression)
		if err != nil {
			return nil, err
		}
	}

	if len(wats) == 0 {
		wats, err = s.watRepo.ListAll()
		if err != nil {
			return nil, err
		}
	}

	if len(wats) == 0 {
		return nil, nil
	}

	return &wats[rand.Intn(len(wats))], nil
}
