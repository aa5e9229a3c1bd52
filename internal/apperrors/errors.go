package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrOCR indicates that the OCR provider failed or returned no usable text.
var ErrOCR = errors.New("ocr extraction failed")

// ErrExtraction indicates that the AI field extraction failed after exhausting retries.
var ErrExtraction = errors.New("invoice field extraction failed")
