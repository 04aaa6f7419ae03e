package faq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cache is the listing cache capability. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

const (
	listCacheTTL    = 5 * time.Minute
	listCacheKeyAll = "faqs:all"
	listCacheKeyCat = "faqs:cat:"
)

type Service struct {
	repo        *Repo
	cache       Cache
	searchLimit int
}

func NewService(repo *Repo, cache Cache, searchLimit int) *Service {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	return &Service{repo: repo, cache: cache, searchLimit: searchLimit}
}

func listCacheKey(category string) string {
	if category == "" {
		return listCacheKeyAll
	}
	return listCacheKeyCat + category
}

// List serves GET /faqs. Listings are cached briefly; cache errors degrade
// to a store read.
func (s *Service) List(ctx context.Context, category string) ([]FAQ, error) {
	key := listCacheKey(category)
	if s.cache != nil {
		var cached []FAQ
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			zap.L().Warn("faq list cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	faqs, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, faqs, listCacheTTL); err != nil {
			zap.L().Warn("faq list cache write failed", zap.Error(err))
		}
	}
	return faqs, nil
}

func (s *Service) Create(ctx context.Context, question, answer, category string, keywords []string) (*FAQ, error) {
	if keywords == nil {
		keywords = []string{}
	}
	f := &FAQ{
		ID:       uuid.New().String(),
		Question: question,
		Answer:   answer,
		Category: category,
		Keywords: keywords,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, listCacheKeyAll, listCacheKey(category)); err != nil {
			zap.L().Warn("faq list cache invalidation failed", zap.Error(err))
		}
	}
	return f, nil
}

// Search ranks the corpus against the query. The corpus is always read from
// the store, never from the listing cache, so each call sees current data.
func (s *Service) Search(ctx context.Context, query string) ([]FAQ, error) {
	corpus, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return Rank(query, corpus, s.searchLimit), nil
}
