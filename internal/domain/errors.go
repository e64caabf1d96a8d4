package domain

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("record not found")
	ErrNoMatchingRule       = errors.New("no matching commission rule")
	ErrIntegrityViolation   = errors.New("commission rule integrity violation")
	ErrEntryVoided          = errors.New("ledger entry is voided")
	ErrInvalidTransferState = errors.New("invalid transfer status transition")
	ErrTerminalTransaction  = errors.New("transaction already in terminal status")
)
