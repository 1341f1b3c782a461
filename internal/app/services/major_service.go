package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/majorpath/internal/app/models"
	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// MajorService defines read access to the majors catalog
type MajorService interface {
	ListMajors(ctx context.Context) ([]models.Major, error)
	GetMajorByName(ctx context.Context, name string) (*models.Major, error)
}

type majorServiceImpl struct {
	store MajorStore
}

// NewMajorService creates a new major service instance
func NewMajorService(store MajorStore) MajorService {
	return &majorServiceImpl{store: store}
}

func (s *majorServiceImpl) ListMajors(ctx context.Context) ([]models.Major, error) {
	majors, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list majors: %w", err)
	}
	return majors, nil
}

// GetMajorByName looks a major up by name, ignoring case
func (s *majorServiceImpl) GetMajorByName(ctx context.Context, name string) (*models.Major, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("major name is required")
	}
	return s.store.GetByName(ctx, name)
}
