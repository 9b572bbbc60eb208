package cafe

import (
	"context"

	"cafeapi/internal/domain"
)

// CafeRepository defines the store operations the cafe service needs
type CafeRepository interface {
	Count(ctx context.Context) (int64, error)
	GetNth(ctx context.Context, n int) (*domain.Cafe, error)
	List(ctx context.Context) ([]domain.Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error)
	Create(ctx context.Context, draft *domain.CafeDraft) (*domain.Cafe, error)
	UpdatePrice(ctx context.Context, id int64, price string) error
	Delete(ctx context.Context, id int64) error
}
