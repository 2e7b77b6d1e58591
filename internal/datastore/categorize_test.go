package datastore

import (
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

func TestCategorize_GormSentinels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CategoryRowNotFound, Categorize(gorm.ErrRecordNotFound))
	assert.Equal(t, CategoryUniqueViolation, Categorize(gorm.ErrDuplicatedKey))
	assert.Equal(t, CategoryForeignKeyViolation, Categorize(gorm.ErrForeignKeyViolated))
	assert.Equal(t, CategoryCheckViolation, Categorize(gorm.ErrCheckConstraintViolated))
	assert.Equal(t, CategoryNone, Categorize(nil))
}

func TestCategorize_SQLiteErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  sqlite3.Error
		want string
	}{
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, CategoryUniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, CategoryUniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, CategoryForeignKeyViolation},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, CategoryCheckViolation},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, CategoryNullViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, CategoryLocked},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, CategoryLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Categorize(tt.err))
		})
	}
}

func TestCategorize_MySQLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number uint16
		want   string
	}{
		{"duplicate entry", 1062, CategoryUniqueViolation},
		{"row is referenced", 1451, CategoryForeignKeyViolation},
		{"no referenced row", 1452, CategoryForeignKeyViolation},
		{"bad null", 1048, CategoryNullViolation},
		{"lock wait timeout", 1205, CategoryLocked},
		{"deadlock", 1213, CategoryDeadlock},
		{"check violated", 3819, CategoryCheckViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := &gomysql.MySQLError{Number: tt.number, Message: tt.name}
			assert.Equal(t, tt.want, Categorize(err))
		})
	}
}

func TestCategorize_StringFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CategoryUniqueViolation, Categorize(errors.NewStd("UNIQUE constraint failed: users.email")))
	assert.Equal(t, CategoryLocked, Categorize(errors.NewStd("database is locked")))
	assert.Equal(t, CategoryDeadlock, Categorize(errors.NewStd("Deadlock found when trying to get lock")))
	assert.Equal(t, CategoryOther, Categorize(errors.NewStd("something else entirely")))
}
