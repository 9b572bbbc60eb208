package cafe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cafeapi/internal/domain"
	"cafeapi/internal/repository"
)

type MockCafeRepository struct {
	mock.Mock
}

func (m *MockCafeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCafeRepository) GetNth(ctx context.Context, n int) (*domain.Cafe, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cafe), args.Error(1)
}

func (m *MockCafeRepository) List(ctx context.Context) ([]domain.Cafe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cafe), args.Error(1)
}

func (m *MockCafeRepository) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cafe), args.Error(1)
}

func (m *MockCafeRepository) Create(ctx context.Context, draft *domain.CafeDraft) (*domain.Cafe, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cafe), args.Error(1)
}

func (m *MockCafeRepository) UpdatePrice(ctx context.Context, id int64, price string) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *MockCafeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptr(s string) *string { return &s }

func TestService_Random_UsesPicker(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Count", mock.Anything).Return(int64(5), nil)
	repo.On("GetNth", mock.Anything, 3).Return(&domain.Cafe{ID: 4, Name: "Fourth"}, nil)

	var gotN int
	svc := NewService(repo, WithPicker(func(n int) int {
		gotN = n
		return 3
	}))

	c, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.ID)
	assert.Equal(t, 5, gotN)
	repo.AssertExpectations(t)
}

func TestService_Random_EmptyTable(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Count", mock.Anything).Return(int64(0), nil)

	svc := NewService(repo)
	_, err := svc.Random(context.Background())
	assert.ErrorIs(t, err, ErrNoCafes)
	repo.AssertNotCalled(t, "GetNth", mock.Anything, mock.Anything)
}

func TestService_Random_TableShrank(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Count", mock.Anything).Return(int64(1), nil)
	repo.On("GetNth", mock.Anything, 0).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.Random(context.Background())
	assert.ErrorIs(t, err, ErrNoCafes)
}

func TestService_Random_DefaultPickerStaysInRange(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Count", mock.Anything).Return(int64(3), nil)
	for i := 0; i < 3; i++ {
		repo.On("GetNth", mock.Anything, i).Return(&domain.Cafe{ID: int64(i + 1)}, nil)
	}

	svc := NewService(repo)
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		c, err := svc.Random(context.Background())
		require.NoError(t, err)
		seen[c.ID] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestService_List_NeverNil(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("List", mock.Anything).Return(nil, nil)

	cafes, err := NewService(repo).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cafes)
	assert.Empty(t, cafes)
}

func TestService_Search_CapitalizesTerm(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("FindByLocation", mock.Anything, "Peckham").
		Return([]domain.Cafe{{ID: 1, Location: "Peckham"}}, nil)

	cafes, err := NewService(repo).Search(context.Background(), "pECKHAM")
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	assert.Equal(t, "Peckham", cafes[0].Location)
	repo.AssertExpectations(t)
}

func TestService_Search_NoMatch(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("FindByLocation", mock.Anything, "Nowhere").Return([]domain.Cafe{}, nil)

	_, err := NewService(repo).Search(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestService_Create_PresenceBooleans(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.CafeDraft) bool {
		return d.HasSockets && // "false" still counts as present
			d.HasToilet &&
			!d.HasWifi && // empty string
			!d.CanTakeCalls && // absent
			*d.Name == "Bean There" &&
			*d.Location == "Peckham"
	})).Return(&domain.Cafe{ID: 1}, nil)

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateCafeRequest{
		Name:     ptr("Bean There"),
		MapURL:   ptr("m"),
		ImgURL:   ptr("i"),
		Location: ptr("Peckham"),
		Seats:    ptr("10"),
		Sockets:  ptr("false"),
		Toilet:   ptr("1"),
		Wifi:     ptr(""),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Create_StrictBooleans(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.CafeDraft) bool {
		return !d.HasSockets && d.HasToilet && d.HasWifi && !d.CanTakeCalls
	})).Return(&domain.Cafe{ID: 1}, nil)

	svc := NewService(repo, WithStrictBooleans(true))
	_, err := svc.Create(context.Background(), CreateCafeRequest{
		Name:    ptr("Strict"),
		Sockets: ptr("false"),
		Toilet:  ptr("Yes"),
		Wifi:    ptr("1"),
		Calls:   ptr("off"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Create_StrictBooleansRejectsGarbage(t *testing.T) {
	repo := new(MockCafeRepository)

	svc := NewService(repo, WithStrictBooleans(true))
	_, err := svc.Create(context.Background(), CreateCafeRequest{
		Name: ptr("Strict"),
		Wifi: ptr("maybe"),
	})
	assert.ErrorIs(t, err, ErrInvalidBoolean)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_MapsStoreErrors(t *testing.T) {
	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"duplicate", repository.ErrUniqueViolation, ErrDuplicateCafe},
		{"missing field", repository.ErrNotNullViolation, ErrMissingField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockCafeRepository)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil, tc.repoErr)

			_, err := NewService(repo).Create(context.Background(), CreateCafeRequest{})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	boom := errors.New("disk full")
	repo := new(MockCafeRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, boom)
	_, err := NewService(repo).Create(context.Background(), CreateCafeRequest{})
	assert.ErrorIs(t, err, boom)
}

func TestService_UpdatePrice(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("UpdatePrice", mock.Anything, int64(1), "£3.00").Return(nil)
	repo.On("UpdatePrice", mock.Anything, int64(99), "£3.00").Return(gorm.ErrRecordNotFound)

	svc := NewService(repo)
	assert.NoError(t, svc.UpdatePrice(context.Background(), 1, "£3.00"))
	assert.ErrorIs(t, svc.UpdatePrice(context.Background(), 99, "£3.00"), ErrCafeNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockCafeRepository)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	svc := NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrCafeNotFound)
}
