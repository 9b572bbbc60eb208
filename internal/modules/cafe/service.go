package cafe

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"cafeapi/internal/domain"
	"cafeapi/internal/repository"
)

type Service struct {
	cafes          CafeRepository
	pick           func(n int) int
	strictBooleans bool
}

type Option func(*Service)

// WithStrictBooleans makes Create parse flag values instead of treating any
// non-empty value as true.
func WithStrictBooleans(strict bool) Option {
	return func(s *Service) { s.strictBooleans = strict }
}

// WithPicker replaces the uniform random index source used by Random.
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

func NewService(cafes CafeRepository, opts ...Option) *Service {
	s := &Service{cafes: cafes, pick: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Random returns one cafe chosen uniformly from the whole table.
func (s *Service) Random(ctx context.Context) (*domain.Cafe, error) {
	total, err := s.cafes.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoCafes
	}

	c, err := s.cafes.GetNth(ctx, s.pick(int(total)))
	if err != nil {
		// the table shrank between Count and GetNth
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCafes
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Cafe, error) {
	cafes, err := s.cafes.List(ctx)
	if err != nil {
		return nil, err
	}
	if cafes == nil {
		cafes = []domain.Cafe{}
	}
	return cafes, nil
}

// Search returns the cafes whose location equals loc after capitalization.
// An empty result is ErrCafeNotFound.
func (s *Service) Search(ctx context.Context, loc string) ([]domain.Cafe, error) {
	cafes, err := s.cafes.FindByLocation(ctx, domain.CapitalizeLocation(loc))
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, ErrCafeNotFound
	}
	return cafes, nil
}

func (s *Service) Create(ctx context.Context, req CreateCafeRequest) (*domain.Cafe, error) {
	draft := &domain.CafeDraft{
		Name:        req.Name,
		MapURL:      req.MapURL,
		ImgURL:      req.ImgURL,
		Location:    req.Location,
		Seats:       req.Seats,
		CoffeePrice: req.CoffeePrice,
	}

	flags := []struct {
		raw *string
		dst *bool
	}{
		{req.Sockets, &draft.HasSockets},
		{req.Toilet, &draft.HasToilet},
		{req.Wifi, &draft.HasWifi},
		{req.Calls, &draft.CanTakeCalls},
	}
	for _, f := range flags {
		v, err := s.parseFlag(f.raw)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	c, err := s.cafes.Create(ctx, draft)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCafe, err)
		case errors.Is(err, repository.ErrNotNullViolation):
			return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdatePrice(ctx context.Context, id int64, price string) error {
	if err := s.cafes.UpdatePrice(ctx, id, price); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCafeNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.cafes.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCafeNotFound
		}
		return err
	}
	return nil
}

// parseFlag turns a submitted form value into a boolean.
// By default any non-empty value is true, "false" included.
func (s *Service) parseFlag(raw *string) (bool, error) {
	if raw == nil || *raw == "" {
		return false, nil
	}
	if !s.strictBooleans {
		return true, nil
	}

	v := strings.ToLower(strings.TrimSpace(*raw))
	switch v {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, *raw)
	}
	return b, nil
}
