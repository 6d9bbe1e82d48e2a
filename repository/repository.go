package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is what every lookup miss surfaces as, so handlers can map it
// to a 404 without knowing about GORM.
var ErrNotFound = gorm.ErrRecordNotFound

// CRUD implements the data-access contract shared by every entity: list all,
// lookup by primary key, create, sparse update with the identifier stripped,
// hard delete. Scoped queries live on the per-entity repositories.
type CRUD[T any] struct {
	db       *gorm.DB
	pk       string
	preloads []string
}

// New builds a repository over db. pk is the primary-key column; preloads
// name the associations eager-loaded on reads.
func New[T any](db *gorm.DB, pk string, preloads ...string) *CRUD[T] {
	return &CRUD[T]{db: db, pk: pk, preloads: preloads}
}

func (r *CRUD[T]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *CRUD[T]) ListAll() ([]T, error) {
	var entities []T
	if err := r.withPreloads(r.db).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *CRUD[T]) GetByID(id interface{}) (*T, error) {
	var entity T
	err := r.withPreloads(r.db).First(&entity, fmt.Sprintf("%s = ?", r.pk), id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Create inserts the row and reloads it so the caller gets the generated
// identifier together with the association graph.
func (r *CRUD[T]) Create(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		return err
	}
	if len(r.preloads) == 0 {
		return nil
	}
	return r.withPreloads(r.db).First(entity).Error
}

// Update writes only the supplied fields. The identifier and timestamp
// columns are stripped from the payload first; they are never client-writable.
// Returns the number of rows touched and, when one was, the reloaded entity.
func (r *CRUD[T]) Update(id interface{}, fields map[string]interface{}) (int64, *T, error) {
	delete(fields, r.pk)
	delete(fields, "created_at")
	delete(fields, "updated_at")
	if len(fields) == 0 {
		return 0, nil, nil
	}

	var model T
	result := r.db.Model(&model).Where(fmt.Sprintf("%s = ?", r.pk), id).Updates(fields)
	if result.Error != nil {
		return 0, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil, nil
	}

	entity, err := r.GetByID(id)
	if err != nil {
		return result.RowsAffected, nil, err
	}
	return result.RowsAffected, entity, nil
}

func (r *CRUD[T]) Delete(id interface{}) (int64, error) {
	var model T
	result := r.db.Where(fmt.Sprintf("%s = ?", r.pk), id).Delete(&model)
	return result.RowsAffected, result.Error
}
