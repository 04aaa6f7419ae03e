package faq

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, f *FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// List returns FAQs in insertion order, optionally filtered by category.
func (r *Repo) List(ctx context.Context, category string) ([]FAQ, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var faqs []FAQ
	if err := q.Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&FAQ{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
