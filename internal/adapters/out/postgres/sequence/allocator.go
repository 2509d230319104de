package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const orderNumberCounter = "order_number"

// CounterDTO is the database representation of a named counter.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormOrderNumberAllocator hands out order numbers from a counter row.
// The upsert increments and reads in one statement, so two concurrent
// orders can never draw the same number even across processes.
type GormOrderNumberAllocator struct {
	db *gorm.DB
}

// NewGormOrderNumberAllocator creates a new counter-backed allocator.
func NewGormOrderNumberAllocator(db *gorm.DB) *GormOrderNumberAllocator {
	return &GormOrderNumberAllocator{db: db}
}

// Next allocates the next order number, zero-padded to three digits.
// Numbers past 999 keep all their digits.
func (a *GormOrderNumberAllocator) Next(ctx context.Context) (string, error) {
	var value int64
	err := a.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		orderNumberCounter,
	).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%03d", value), nil
}
