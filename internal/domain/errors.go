package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeStorageCorrupt     = "STORAGE_CORRUPT"
	CodeUserExists         = "USER_EXISTS"
	CodeTeamExists         = "TEAM_EXISTS"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodePasswordMismatch   = "PASSWORD_MISMATCH"
	CodeInvalidVote        = "INVALID_VOTE"
	CodeBadRequest         = "BAD_REQUEST"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
)

var (
	// ErrStorageCorrupt - документ хранилища не удалось разобрать, он сброшен к значению по умолчанию
	ErrStorageCorrupt = &DomainError{
		Code:    CodeStorageCorrupt,
		Message: "stored document is corrupted",
	}

	// ErrUserExists - пользователь с таким именем уже зарегистрирован
	ErrUserExists = &DomainError{
		Code:    CodeUserExists,
		Message: "username already exists",
	}

	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team already exists",
	}

	// ErrTeamNotFound - команда не найдена
	ErrTeamNotFound = &DomainError{
		Code:    CodeTeamNotFound,
		Message: "team not found",
	}

	// ErrInvalidCredentials - неверное имя пользователя или пароль
	ErrInvalidCredentials = &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "invalid credentials",
	}

	// ErrUnauthorized - операция требует входа в систему
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "login required",
	}

	// ErrPasswordMismatch - пароль и подтверждение не совпадают
	ErrPasswordMismatch = &DomainError{
		Code:    CodePasswordMismatch,
		Message: "passwords do not match",
	}

	// ErrTooManyAttempts - слишком много неудачных попыток входа
	ErrTooManyAttempts = &DomainError{
		Code:    CodeTooManyAttempts,
		Message: "too many failed login attempts, try again later",
	}
)

// NewTeamExistsError создает ошибку TEAM_EXISTS с именем команды
func NewTeamExistsError(name string) *DomainError {
	return &DomainError{
		Code:    CodeTeamExists,
		Message: fmt.Sprintf("team '%s' already exists", name),
	}
}

// NewTeamNotFoundError создает ошибку TEAM_NOT_FOUND; suggestion может быть пустой
func NewTeamNotFoundError(name, suggestion string) *DomainError {
	msg := fmt.Sprintf("team '%s' does not exist", name)
	if suggestion != "" {
		msg += fmt.Sprintf(", did you mean '%s'?", suggestion)
	}
	return &DomainError{
		Code:    CodeTeamNotFound,
		Message: msg,
	}
}

// NewUserExistsError создает ошибку USER_EXISTS с именем пользователя
func NewUserExistsError(username string) *DomainError {
	return &DomainError{
		Code:    CodeUserExists,
		Message: fmt.Sprintf("username '%s' already exists, please choose a different username", username),
	}
}

func NewInvalidVoteError(value int) *DomainError {
	return &DomainError{
		Code:    CodeInvalidVote,
		Message: fmt.Sprintf("vote value must be between %d and %d, got %d", MinVote, MaxVote, value),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
