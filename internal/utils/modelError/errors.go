package modelError

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("index out of range")
var ErrDuplicateKey = errors.New("duplicate key")

var ErrNotFound = errors.New("not found")
var ErrSubjectNotFound = fmt.Errorf("subject not found: %w", ErrNotFound)
var ErrClassNotFound = fmt.Errorf("class not found: %w", ErrNotFound)
var ErrSubjectsPlanNotFound = fmt.Errorf("subjects plan not found: %w", ErrNotFound)

var ErrInvalidOperation = errors.New("invalid operation")
var ErrSaveDeleted = fmt.Errorf("cannot save a deleted entity: %w", ErrInvalidOperation)
var ErrInsertDeleted = fmt.Errorf("cannot insert a deleted entity: %w", ErrInvalidOperation)
var ErrNilEntity = fmt.Errorf("entity is nil: %w", ErrInvalidOperation)

var ErrInvalidState = errors.New("invalid state")

var ErrInconsistentPatch = errors.New("inconsistent patch")
var ErrDegeneratePatch = errors.New("degenerate patch")
var ErrInvalidPatch = errors.New("invalid patch")

var ErrInvalidGrade = errors.New("invalid grade value")

var ErrInvalidFormat = errors.New("invalid format")

var ErrValidation = errors.New("validation failed")
