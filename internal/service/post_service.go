package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
)

// MaxPosts ограничивает выборку каталога. Пагинации нет.
const MaxPosts = 100

type PostRepository interface {
	List(ctx context.Context, category string, limit int) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	SeedIfEmpty(ctx context.Context, posts []models.Post) (bool, error)
}

// PostService отдаёт каталог постов и засевает его при первом обращении.
type PostService struct {
	posts PostRepository
	clock Clock
}

func NewPostService(posts PostRepository, clock Clock) *PostService {
	return &PostService{posts: posts, clock: clock}
}

// ListPosts возвращает посты каталога, при пустом каталоге сначала засевая его.
func (s *PostService) ListPosts(ctx context.Context, category string) ([]models.Post, error) {
	if category != "" {
		if _, ok := models.ValidPostCategories[category]; !ok {
			return nil, apperror.Validation(fmt.Sprintf("unknown category %q", category))
		}
	}

	posts, err := s.posts.List(ctx, category, MaxPosts)
	if err != nil {
		return nil, fmt.Errorf("post service: list: %w", err)
	}
	if len(posts) > 0 {
		return posts, nil
	}

	seeded, err := s.posts.SeedIfEmpty(ctx, SeedPosts(s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("post service: seed: %w", err)
	}
	if seeded {
		logger.Get().WithFields(logrus.Fields{"count": len(seedPostTemplates)}).Info("каталог постов засеян")
	}

	// Перечитываем: каталог мог засеять параллельный запрос.
	posts, err = s.posts.List(ctx, category, MaxPosts)
	if err != nil {
		return nil, fmt.Errorf("post service: list: %w", err)
	}

	return posts, nil
}
