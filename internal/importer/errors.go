package importer

import (
	"errors"

	"github.com/billfold/backend/internal/importer/parser"
)

var (
	// ErrCategoryNotFound is returned when source data names a category
	// that does not exist. An explicit category is expected to exist,
	// this aborts the whole ingestion.
	ErrCategoryNotFound = errors.New("the category named in the statement data does not exist")

	// ErrUnknownFormat is re-exported so that callers do not need to
	// import the parser package to classify ingestion errors.
	ErrUnknownFormat = parser.ErrUnknownFormat

	// ErrParse is re-exported for the same reason.
	ErrParse = parser.ErrParse
)
