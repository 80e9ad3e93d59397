package models

import "errors"

// Ошибки стораджа; pkg/httperrors подбирает по ним статус-коды.
var (
	ErrIDAllocation   = errors.New("upload id allocation failed")
	ErrStorageIO      = errors.New("storage io failure")
	ErrOverflow       = errors.New("declared upload length exceeded")
	ErrSourceRead     = errors.New("source read failure")
	ErrNotFound       = errors.New("upload not found")
	ErrOffsetMismatch = errors.New("upload offset mismatch")
)
