package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/domain/repository"
	"github.com/helixml/catalog/internal/database"
	"gorm.io/gorm"
)

// AttributeStore implements attribute.AttributeStore using GORM.
type AttributeStore struct {
	database.Repository[attribute.Attribute, AttributeModel]
	values database.Repository[attribute.Value, AttributeValueModel]
}

// NewAttributeStore creates a new AttributeStore.
func NewAttributeStore(db database.Database) AttributeStore {
	return AttributeStore{
		Repository: database.NewRepository[attribute.Attribute, AttributeModel](db, AttributeMapper{}, "attribute"),
		values:     database.NewRepository[attribute.Value, AttributeValueModel](db, ValueMapper{}, "attribute value"),
	}
}

// Save creates or updates an attribute.
func (s AttributeStore) Save(ctx context.Context, a attribute.Attribute) (attribute.Attribute, error) {
	model := s.Mapper().ToModel(a)

	var result *gorm.DB
	if a.ID() == 0 {
		result = s.DB(ctx).Create(&model)
	} else {
		result = s.DB(ctx).Save(&model)
	}

	if result.Error != nil {
		return attribute.Attribute{}, fmt.Errorf("save attribute: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// SaveValue creates or updates an attribute value.
func (s AttributeStore) SaveValue(ctx context.Context, v attribute.Value) (attribute.Value, error) {
	model := s.values.Mapper().ToModel(v)

	var result *gorm.DB
	if v.ID() == 0 {
		result = s.values.DB(ctx).Create(&model)
	} else {
		result = s.values.DB(ctx).Save(&model)
	}

	if result.Error != nil {
		return attribute.Value{}, fmt.Errorf("save attribute value: %w", result.Error)
	}
	return s.values.Mapper().ToDomain(model), nil
}

// Values returns the attribute's values ordered by sort order, then id.
func (s AttributeStore) Values(ctx context.Context, attributeID int64, options ...repository.Option) ([]attribute.Value, error) {
	opts := append([]repository.Option{
		attribute.WithAttributeID(attributeID),
		repository.WithOrderAsc("sort_order"),
		repository.WithOrderAsc("id"),
	}, options...)
	return s.values.Find(ctx, opts...)
}

// ValueIDs returns the identifiers of every value the attribute owns.
func (s AttributeStore) ValueIDs(ctx context.Context, attributeID int64) ([]int64, error) {
	var ids []int64
	err := s.values.DB(ctx).
		Model(&AttributeValueModel{}).
		Where("attribute_id = ?", attributeID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list value ids of attribute %d: %w", attributeID, err)
	}
	return ids, nil
}
