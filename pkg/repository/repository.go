package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record_not_found")

// Repository is a typed gorm store. Conditions are passed through to
// gorm's query builder unchanged.
type Repository[T any] interface {
	Insert(ctx context.Context, record *T) error
	Save(ctx context.Context, record *T) error
	Updates(ctx context.Context, record *T, values map[string]any) error
	Delete(ctx context.Context, conds ...any) error
	FindOne(ctx context.Context, conds ...any) (*T, error)
	Find(ctx context.Context, conds ...any) ([]T, error)
	Count(ctx context.Context, conds ...any) (int64, error)
}

type store[T any] struct {
	db *gorm.DB
}

// ProvideStore builds a Repository bound to the given connection.
func ProvideStore[T any](db *gorm.DB) Repository[T] {
	return &store[T]{db: db}
}

func (s *store[T]) Insert(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *store[T]) Save(ctx context.Context, record *T) error {
	return s.db.WithContext(ctx).Save(record).Error
}

func (s *store[T]) Updates(ctx context.Context, record *T, values map[string]any) error {
	return s.db.WithContext(ctx).Model(record).Updates(values).Error
}

func (s *store[T]) Delete(ctx context.Context, conds ...any) error {
	var zero T
	return s.db.WithContext(ctx).Delete(&zero, conds...).Error
}

func (s *store[T]) FindOne(ctx context.Context, conds ...any) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).First(&record, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *store[T]) Find(ctx context.Context, conds ...any) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records, conds...).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *store[T]) Count(ctx context.Context, conds ...any) (int64, error) {
	var zero T
	var n int64
	q := s.db.WithContext(ctx).Model(&zero)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
