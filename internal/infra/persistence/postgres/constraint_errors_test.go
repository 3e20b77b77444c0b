package postgres

import (
	"testing"

	domainerrors "todoez/internal/domain/errors"
	"todoez/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")
	foreign := &pgconn.PgError{Code: pgForeignKeyViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreign))

	assert.True(t, isForeignKeyConstraintViolation(foreign))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("other")))
}

func TestTaskWriteError(t *testing.T) {
	foreignKey := func(constraint string) error {
		return errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraint}, "insert")
	}

	assert.Equal(t, repository.ErrProjectNotFound, taskWriteError(foreignKey(fkTasksProject), "write"))
	assert.Equal(t, repository.ErrSprintNotFound, taskWriteError(foreignKey(fkTasksSprint), "write"))
	assert.Equal(t, repository.ErrReporterNotFound, taskWriteError(foreignKey(fkTasksReporter), "write"))
	assert.Equal(t, repository.ErrAssigneeNotFound, taskWriteError(foreignKey(fkTasksAssignee), "write"))

	for _, err := range []error{foreignKey("fk_unknown"), gorm.ErrForeignKeyViolated, errors.New("timeout")} {
		mapped := taskWriteError(err, "write")
		assert.NotErrorIs(t, mapped, repository.ErrSprintNotFound)
		assert.NotErrorIs(t, mapped, repository.ErrAssigneeNotFound)

		var dbErr *domainerrors.DatabaseExecuteError
		assert.ErrorAs(t, mapped, &dbErr)
	}
}
