// Package txctx carries a GORM transaction through a context.Context so
// repositories join the transaction opened by the caller.
package txctx

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// With returns a copy of ctx carrying tx.
func With(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// From returns the transaction carried by ctx, if any.
func From(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// DB returns the transaction carried by ctx or db bound to ctx.
//
// Example:
//
//	func (r *GormCourseRepository) Delete(ctx context.Context, id kernel.ID) error {
//	    return txctx.DB(ctx, r.db).Delete(&CourseDTO{}, id.Int64()).Error
//	}
func DB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := From(ctx); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
