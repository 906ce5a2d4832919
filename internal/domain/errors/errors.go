package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail      = errors.New("error.invalid_email")
	ErrInvalidRole       = errors.New("error.invalid_role")
	ErrPointNotFound     = errors.New("error.point_not_found")
	ErrPointLimitReached = errors.New("error.point_limit_reached")
	ErrNotPointOwner     = errors.New("error.not_point_owner")
	ErrInvalidCategory   = errors.New("error.invalid_category")
	ErrEmptyTitle        = errors.New("error.empty_title")
	ErrImageTooLarge     = errors.New("error.image_too_large")
	ErrNotAnImage        = errors.New("error.not_an_image")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
