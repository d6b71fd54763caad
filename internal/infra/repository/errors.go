package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/6laercio/saude-integrada-api/internal/httperr"
)

// translate maps store failures every repository shares. Entity-specific
// constraint violations are handled by the caller first.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.KindOf(err) != httperr.KindInternal:
		return err
	case httperr.IsExclusionConflict(err):
		return httperr.SlotConflict()
	case httperr.IsTransient(err):
		return httperr.Transient(err)
	}
	return err
}

func isDuplicate(err error) bool {
	return httperr.IsUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKey(err error) bool {
	return httperr.IsForeignKeyViolation(err) || errors.Is(err, gorm.ErrForeignKeyViolated)
}

func constraintMentions(err error, word string) bool {
	return strings.Contains(httperr.ConstraintName(err), word)
}

// forUpdate locks the selected rows until the surrounding transaction ends.
// SQLite has no row locks and serialises writers on its own.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func exists(
	ctx context.Context,
	db *gorm.DB,
	model any,
	query string,
	args ...any,
) (bool, error) {

	var count int64
	if err := db.WithContext(ctx).
		Model(model).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// containsPattern builds a case-insensitive LIKE operand.
func containsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + strings.ToLower(s) + "%"
}
