package employee

import (
	"errors"
	"net/http"

	employeeerrors "github.com/sameers07/Employee-API/internal/employee/errors"
	"github.com/sameers07/Employee-API/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/mongo"
)

// mapRepositoryError turns driver errors into the service's error taxonomy.
// The unique-index violation is the authoritative conflict signal; there is
// no pre-insert existence check to race against.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return employeeerrors.ErrEmployeeNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return employeeerrors.ErrEmployeeIDAlreadyExists
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		"Employee store is unavailable",
		http.StatusServiceUnavailable,
	)
}
