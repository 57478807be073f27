package crud

import (
	"errors"

	"gorm.io/gorm"
)

// ListQuery narrows a List call. A zero Limit means the full
// collection is returned.
type ListQuery struct {
	Filters map[string]interface{}
	Offset  int
	Limit   int
}

// Store is the persistence abstraction behind a CRUD controller.
// Handlers never touch a database handle directly.
type Store[M any] interface {
	Create(m *M) error
	Get(id uint) (*M, error)
	Update(m *M) error
	Delete(m *M) error
	List(q ListQuery) ([]M, error)
	Count(filters map[string]interface{}) (int64, error)
}

// GormStore backs a Store with an injected gorm handle.
type GormStore[M any] struct {
	db    *gorm.DB
	order string
}

// NewGormStore returns a store for M. order is the default list
// ordering, e.g. "order_index asc".
func NewGormStore[M any](db *gorm.DB, order string) *GormStore[M] {
	return &GormStore[M]{db: db, order: order}
}

func (s *GormStore[M]) Create(m *M) error {
	return s.db.Create(m).Error
}

func (s *GormStore[M]) Get(id uint) (*M, error) {
	var m M
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *GormStore[M]) Update(m *M) error {
	return s.db.Save(m).Error
}

func (s *GormStore[M]) Delete(m *M) error {
	return s.db.Delete(m).Error
}

func (s *GormStore[M]) List(q ListQuery) ([]M, error) {
	items := make([]M, 0)
	db := s.db.Model(new(M))
	for column, value := range q.Filters {
		db = db.Where(column+" = ?", value)
	}
	if s.order != "" {
		db = db.Order(s.order)
	}
	if q.Limit > 0 {
		db = db.Offset(q.Offset).Limit(q.Limit)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore[M]) Count(filters map[string]interface{}) (int64, error) {
	var total int64
	db := s.db.Model(new(M))
	for column, value := range filters {
		db = db.Where(column+" = ?", value)
	}
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
