package repository

import (
	"context"

	"gorm.io/gorm"

	"cafeapi/internal/domain"
)

// CafeRepository is the persistence side of the cafe API.
type CafeRepository interface {
	Count(ctx context.Context) (int64, error)
	GetNth(ctx context.Context, n int) (*domain.Cafe, error)
	List(ctx context.Context) ([]domain.Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error)
	Create(ctx context.Context, draft *domain.CafeDraft) (*domain.Cafe, error)
	UpdatePrice(ctx context.Context, id int64, price string) error
	Delete(ctx context.Context, id int64) error
}

type cafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository(db *gorm.DB) CafeRepository {
	return &cafeRepository{db: db}
}

// cafeRow is the insert shape: nil pointers are written as NULL so the
// table's NOT NULL constraints reject missing fields.
type cafeRow struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Name         *string `gorm:"column:name"`
	MapURL       *string `gorm:"column:map_url"`
	ImgURL       *string `gorm:"column:img_url"`
	Location     *string `gorm:"column:location"`
	Seats        *string `gorm:"column:seats"`
	HasToilet    bool    `gorm:"column:has_toilet"`
	HasWifi      bool    `gorm:"column:has_wifi"`
	HasSockets   bool    `gorm:"column:has_sockets"`
	CanTakeCalls bool    `gorm:"column:can_take_calls"`
	CoffeePrice  *string `gorm:"column:coffee_price"`
}

func (cafeRow) TableName() string { return domain.Cafe{}.TableName() }

func (r *cafeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Cafe{}).Count(&total).Error
	return total, err
}

// GetNth returns the n-th cafe (zero based) in id order.
func (r *cafeRepository) GetNth(ctx context.Context, n int) (*domain.Cafe, error) {
	var c domain.Cafe
	if err := r.db.WithContext(ctx).Order("id").Offset(n).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cafeRepository) List(ctx context.Context) ([]domain.Cafe, error) {
	cafes := []domain.Cafe{}
	if err := r.db.WithContext(ctx).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	cafes := []domain.Cafe{}
	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("id").
		Find(&cafes).Error
	if err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) Create(ctx context.Context, draft *domain.CafeDraft) (*domain.Cafe, error) {
	row := cafeRow{
		Name:         draft.Name,
		MapURL:       draft.MapURL,
		ImgURL:       draft.ImgURL,
		Location:     draft.Location,
		Seats:        draft.Seats,
		HasToilet:    draft.HasToilet,
		HasWifi:      draft.HasWifi,
		HasSockets:   draft.HasSockets,
		CanTakeCalls: draft.CanTakeCalls,
		CoffeePrice:  draft.CoffeePrice,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, translateError(err)
	}

	return &domain.Cafe{
		ID:           row.ID,
		Name:         deref(row.Name),
		MapURL:       deref(row.MapURL),
		ImgURL:       deref(row.ImgURL),
		Location:     deref(row.Location),
		Seats:        deref(row.Seats),
		HasToilet:    row.HasToilet,
		HasWifi:      row.HasWifi,
		HasSockets:   row.HasSockets,
		CanTakeCalls: row.CanTakeCalls,
		CoffeePrice:  row.CoffeePrice,
	}, nil
}

// UpdatePrice sets coffee_price only. Returns gorm.ErrRecordNotFound when no row has the id.
func (r *cafeRepository) UpdatePrice(ctx context.Context, id int64, price string) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Cafe{}).
		Where("id = ?", id).
		Update("coffee_price", price)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cafeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Cafe{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
