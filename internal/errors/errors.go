package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeCatalog       ErrorType = "CATALOG"
	TypeInput         ErrorType = "INPUT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" - %s", path)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors of the same type and message, so errors.Is works
// against the sentinel values below after WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Catalog errors
var (
	ErrCatalogRead = NewAppError(TypeCatalog, "Failed to read course catalog", nil).
			WithSuggestion("Check the path: spi-calc config set catalog <file>")

	ErrCatalogParse = NewAppError(TypeCatalog, "Failed to parse course catalog", nil).
			WithSuggestion("The catalog must map branch -> semester -> list of {code, name, credits}")

	ErrCatalogFormat = NewAppError(TypeCatalog, "Unsupported catalog format", nil).
				WithSuggestion("Use a .json, .yaml or .yml file")

	ErrCatalogWatch = NewAppError(TypeCatalog, "Failed to watch course catalog", nil).
			WithSuggestion("Run without --watch or check file permissions")

	ErrCatalogWatchEmbedded = NewAppError(TypeCatalog, "The embedded catalog cannot be watched", nil).
				WithSuggestion("Point to a catalog file first: spi-calc config set catalog <file>")
)

// Configuration errors
var (
	ErrConfigLoad = NewAppError(TypeConfiguration, "Failed to load configuration", nil).
			WithSuggestion("Fix or delete ~/.spi-calc/config.toml to regenerate defaults")

	ErrConfigSave = NewAppError(TypeConfiguration, "Failed to save configuration", nil).
			WithSuggestion("Check write permissions on ~/.spi-calc")

	ErrConfigInvalid = NewAppError(TypeConfiguration, "Configuration is not valid", nil)

	ErrUnsupportedLanguage = NewAppError(TypeConfiguration, "Language not supported", nil).
				WithSuggestion("Supported languages: en, es")

	ErrUnknownConfigKey = NewAppError(TypeConfiguration, "Unknown configuration key", nil).
				WithSuggestion("Valid keys: lang, catalog, color, default-branch")

	ErrEnvOverrides = NewAppError(TypeConfiguration, "Failed to read SPICALC_* environment variables", nil)
)

// Input errors
var (
	ErrInvalidOutputFormat = NewAppError(TypeInput, "Invalid output format", nil).
				WithSuggestion("Use --output text or --output json")

	ErrMissingArguments = NewAppError(TypeInput, "Missing arguments", nil)

	ErrInvalidBool = NewAppError(TypeInput, "Invalid boolean value", nil).
			WithSuggestion("Use true or false")
)

var (
	ErrTerminal = NewAppError(TypeInternal, "Interactive session failed", nil).
		WithSuggestion("Use the calc command when no terminal is attached")
)
