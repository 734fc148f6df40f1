package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced at the action boundary.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindStore      ErrorKind = "store_error"
	KindNotFound   ErrorKind = "not_found"
	KindAuth       ErrorKind = "auth_error"
	KindUpload     ErrorKind = "upload_error"
)

// AppError carries the kind of failure, the operation that failed and the cause.
type AppError struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches another *AppError by kind, so errors.Is(err, ErrNotFound) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Op == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &AppError{Kind: KindValidation}
	ErrStore      = &AppError{Kind: KindStore}
	ErrNotFound   = &AppError{Kind: KindNotFound}
	ErrAuth       = &AppError{Kind: KindAuth}
	ErrUpload     = &AppError{Kind: KindUpload}
)

func ValidationError(op, message string) error {
	return &AppError{Kind: KindValidation, Op: op, Message: message}
}

func StoreError(op string, err error) error {
	return &AppError{Kind: KindStore, Op: op, Err: err}
}

func NotFoundError(op, message string) error {
	return &AppError{Kind: KindNotFound, Op: op, Message: message}
}

func AuthError(op, message string, err error) error {
	return &AppError{Kind: KindAuth, Op: op, Message: message, Err: err}
}

func UploadError(op string, err error) error {
	return &AppError{Kind: KindUpload, Op: op, Err: err}
}

// KindOf returns the kind of err, treating unclassified errors as store errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// PublicMessage is the text shown to API clients. Store causes are not echoed back.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "operation failed"
	}
	switch appErr.Kind {
	case KindStore:
		return appErr.Op + " failed"
	case KindUpload:
		return appErr.Op + " failed: image upload error"
	default:
		if appErr.Message != "" {
			return appErr.Message
		}
		return appErr.Op + " failed"
	}
}
