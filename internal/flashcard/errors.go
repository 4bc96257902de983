package flashcard

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("flashcard store is not initialized")
	ErrCardNotFound   = errors.New("card not found")
	ErrInvalidCard    = errors.New("invalid card")
	ErrInvalidHistory = errors.New("invalid history entry")
	// ErrCorruptRow is wrapped when a stored row cannot be decoded.
	ErrCorruptRow = errors.New("corrupt row")
)

// StorageError wraps a failed database operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ContextInsertError is returned by InsertCard when the card row was written
// but one of its contexts was not. The whole card is rolled back.
type ContextInsertError struct {
	Word  string
	Index int
	Err   error
}

func (e *ContextInsertError) Error() string {
	return fmt.Sprintf("insert context %d of card %q: %v", e.Index, e.Word, e.Err)
}

func (e *ContextInsertError) Unwrap() error {
	return e.Err
}
