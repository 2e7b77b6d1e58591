package datastore

import (
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// Error categories shared by metrics and by the repository error
// translation. Categorization prefers typed driver errors and falls back
// to string matching for errors the drivers don't type.
const (
	CategoryNone                = "none"
	CategoryRowNotFound         = "not_found"
	CategoryUniqueViolation     = "unique_violation"
	CategoryForeignKeyViolation = "foreign_key_violation"
	CategoryCheckViolation      = "check_violation"
	CategoryNullViolation       = "null_violation"
	CategoryLocked              = "locked"
	CategoryDeadlock            = "deadlock"
	CategoryTimeout             = "timeout"
	CategoryConnection          = "connection_error"
	CategoryOther               = "other"
)

// MySQL server error numbers the service cares about.
const (
	mysqlErrDupEntry        = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
	mysqlErrBadNull         = 1048
	mysqlErrLockWaitTimeout = 1205
	mysqlErrLockDeadlock    = 1213
	mysqlErrCheckViolated   = 3819
)

// Categorize classifies a database error for metrics and for mapping onto
// the domain failure taxonomy.
func Categorize(err error) string {
	if err == nil {
		return CategoryNone
	}

	// GORM-translated sentinels first; both dialects are opened with
	// TranslateError enabled.
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return CategoryRowNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return CategoryUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return CategoryForeignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return CategoryCheckViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return categorizeSQLite(sqliteErr)
	}

	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return categorizeMySQL(mysqlErr)
	}

	return categorizeString(err)
}

func categorizeSQLite(err sqlite3.Error) string {
	switch err.Code {
	case sqlite3.ErrConstraint:
		switch err.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return CategoryUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return CategoryForeignKeyViolation
		case sqlite3.ErrConstraintCheck:
			return CategoryCheckViolation
		case sqlite3.ErrConstraintNotNull:
			return CategoryNullViolation
		default:
			return CategoryCheckViolation
		}
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return CategoryLocked
	default:
		return categorizeString(err)
	}
}

func categorizeMySQL(err *gomysql.MySQLError) string {
	switch err.Number {
	case mysqlErrDupEntry:
		return CategoryUniqueViolation
	case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
		return CategoryForeignKeyViolation
	case mysqlErrBadNull:
		return CategoryNullViolation
	case mysqlErrLockWaitTimeout:
		return CategoryLocked
	case mysqlErrLockDeadlock:
		return CategoryDeadlock
	case mysqlErrCheckViolated:
		return CategoryCheckViolation
	default:
		return categorizeString(err)
	}
}

func categorizeString(err error) string {
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "duplicate entry"):
		return CategoryUniqueViolation
	case strings.Contains(errStr, "foreign key"):
		return CategoryForeignKeyViolation
	case strings.Contains(errStr, "check constraint"):
		return CategoryCheckViolation
	case strings.Contains(errStr, "not null"):
		return CategoryNullViolation
	case strings.Contains(errStr, "deadlock"):
		return CategoryDeadlock
	case strings.Contains(errStr, "database is locked") || strings.Contains(errStr, "lock wait timeout"):
		return CategoryLocked
	case strings.Contains(errStr, "timeout"):
		return CategoryTimeout
	case strings.Contains(errStr, "connection"):
		return CategoryConnection
	default:
		return CategoryOther
	}
}
