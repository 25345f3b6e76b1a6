package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/session"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры фильтрации списка товаров
type ProductFilter struct {
	NameSubstring string
	MinPrice      *int64
	MaxPrice      *int64
}

// ProductRepository каталог только для чтения
type ProductRepository interface {
	GetByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
	Lookup(id domain.ProductID) (domain.Product, bool)
	IDs() []domain.ProductID
}

// SessionRepository сессии посетителей в памяти процесса
type SessionRepository interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
