package domain

import "errors"

var (
	ErrEmptyBatch          = errors.New("no files uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrTooManyFiles        = errors.New("too many files in batch")
	ErrNoTextContent       = errors.New("document contains no extractable text")
)
