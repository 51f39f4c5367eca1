package services

import (
	"context"
	"errors"
	"strings"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"
)

type HomepageService struct {
	Sections *repository.HomepageRepository
}

func NewHomepageService(hr *repository.HomepageRepository) *HomepageService {
	return &HomepageService{Sections: hr}
}

// ListPublic returns only visible sections, in display order.
func (s *HomepageService) ListPublic(ctx context.Context) ([]model.HomepageSection, error) {
	return s.Sections.List(ctx, true)
}

// ListAll returns every section for the back-office editor.
func (s *HomepageService) ListAll(ctx context.Context) ([]model.HomepageSection, error) {
	return s.Sections.List(ctx, false)
}

func (s *HomepageService) Create(ctx context.Context, sec *model.HomepageSection) (int64, error) {
	if strings.TrimSpace(sec.Title) == "" {
		return 0, errors.New("title is required")
	}
	return s.Sections.Create(ctx, sec)
}

func (s *HomepageService) Update(ctx context.Context, sec *model.HomepageSection) error {
	if strings.TrimSpace(sec.Title) == "" {
		return errors.New("title is required")
	}
	return s.Sections.Update(ctx, sec)
}

func (s *HomepageService) Delete(ctx context.Context, sectionID int64) error {
	return s.Sections.Delete(ctx, sectionID)
}
