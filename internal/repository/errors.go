package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user registration hits the
	// unique constraint on users.email
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrScheduleNotFound is returned when an activity write references a
	// schedule that does not exist (foreign key violation)
	ErrScheduleNotFound = errors.New("schedule not found")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// isPQError reports whether err is a Postgres error with the given code
func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
