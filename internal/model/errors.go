package model

import "errors"

var (
	// ErrEmptyInput is returned when the input contains no digits.
	ErrEmptyInput = errors.New("please enter a phone number")
	// ErrInvalidLength is returned when the input is not exactly ten digits.
	ErrInvalidLength = errors.New("phone number must have exactly 10 digits")
	// ErrDuplicate is returned when the number is already registered.
	ErrDuplicate = errors.New("number has already been reported as a scam")
	// ErrNotFound is returned when no entry matches the number.
	ErrNotFound = errors.New("number is not in the registry")
	// ErrPersistence is returned when the slot rejects a write.
	ErrPersistence = errors.New("failed to persist registry")
	// ErrSlotNotFound is returned by slot stores when nothing was saved under the key.
	ErrSlotNotFound = errors.New("slot not found")
)
