package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"identity-service/app/domain"
)

// Postgres error codes translated at this boundary.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapError translates a backend-native failure into the domain error
// taxonomy. Errors already in the taxonomy pass through unchanged;
// anything unrecognized is wrapped as ErrInternal so callers never
// match on driver types.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrExpired),
		errors.Is(err, domain.ErrForbidden):
		return err
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.ErrAlreadyExists
		case codeForeignKeyViolation:
			return domain.ErrNotFound
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrInternal, err)
}
