package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Flavor errors
	ErrFlavorNotFound       = errors.New("flavor not found")
	ErrFlavorProjectExists  = errors.New("flavor already granted to project")
	ErrFlavorProjectMissing = errors.New("flavor project not found")
	ErrFlavorInUse          = errors.New("flavor is in use")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")

	// Quota errors
	ErrQuotaExceeded = errors.New("quota exceeded")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrProviderUnavailable     = errors.New("provider unavailable")
)
