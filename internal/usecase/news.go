package usecase

import (
	"context"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
)

// NewsUsecase serves aggregated market news.
type NewsUsecase struct {
	source drepo.NewsSource
}

func NewNewsUsecase(source drepo.NewsSource) *NewsUsecase {
	return &NewsUsecase{source: source}
}

func (u *NewsUsecase) Latest(ctx context.Context, limit int) ([]models.NewsItem, error) {
	return u.source.Latest(ctx, limit)
}
