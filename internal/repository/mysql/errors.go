package mysql

import (
	"errors"
	"fmt"

	drv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/pratikw008/blog-rest-api/domain"
)

const errDupEntry = 1062

// translateError turns store errors into domain errors. Unknown errors are wrapped with op.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	var myErr *drv.MySQLError
	if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &myErr) && myErr.Number == errDupEntry) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}

	return fmt.Errorf("%s: %w", op, err)
}
