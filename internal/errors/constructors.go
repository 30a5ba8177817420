package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *Error {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(field, reason string) *Error {
	return New(CategoryConfig, SeverityFatal, "configuration invalid").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ValidationFailed(field, reason string) *Error {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Document errors

func DocumentInvalid(path string, block int, reason string) *Error {
	return New(CategoryValidation, SeverityError, "document invalid").
		WithContext("document", path).
		WithContext("block", block).
		WithContext("reason", reason)
}

func RenderFailed(document string, cause error) *Error {
	return Wrap(cause, CategoryRender, SeverityError, "render failed").
		WithContext("document", document)
}

func TemplateFailed(stage string, cause error) *Error {
	return Wrap(cause, CategoryTemplate, SeverityError, "template failed").
		WithContext("stage", stage)
}

// Filesystem errors

func OutputError(path string, cause error) *Error {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

func InputError(path string, cause error) *Error {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "input read failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *Error {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
