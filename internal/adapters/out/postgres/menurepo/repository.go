package menurepo

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements the read-only MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Get retrieves a single menu item by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu_item_id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the menu items for the given identifiers. Returns an
// ObjectNotFoundError naming the first missing identifier so order creation
// fails fast instead of pricing a partial catalog.
func (r *GormMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]ItemDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	items := make([]*menu.Item, 0, len(ids))
	for _, id := range ids {
		dto, ok := found[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu_item_id", id.String())
		}

		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}
