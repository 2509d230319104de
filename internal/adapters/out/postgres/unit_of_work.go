// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction and hands out
// repositories bound to it.
package postgres

import (
	"context"

	"inatpos/internal/adapters/out/postgres/menurepo"
	"inatpos/internal/adapters/out/postgres/orderrepo"
	"inatpos/internal/adapters/out/postgres/sequence"
	"inatpos/internal/adapters/out/postgres/staffrepo"
	"inatpos/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh instance so
// concurrent operations stay isolated from each other.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out. Repositories obtained before Begin run on the
// main connection; after Begin they run inside the transaction, and a
// Rollback discards everything they wrote, order number allocations
// included.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on the same instance is a no-op, not a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// StaffRepository returns a staff repository bound to the current
// transaction.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn())
}

// CategoryRepository returns a category repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return menurepo.NewGormCategoryRepository(uow.conn())
}

// ItemRepository returns a menu item repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return menurepo.NewGormItemRepository(uow.conn())
}

// AddOnRepository returns an add-on repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AddOnRepository() ports.AddOnRepository {
	return menurepo.NewGormAddOnRepository(uow.conn())
}

// OrderNumberAllocator returns the order number allocator bound to the
// current transaction, so an aborted order creation gives its number back.
func (uow *GormUnitOfWork) OrderNumberAllocator() ports.OrderNumberAllocator {
	return sequence.NewGormOrderNumberAllocator(uow.conn())
}
