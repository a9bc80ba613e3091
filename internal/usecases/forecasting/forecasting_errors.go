package forecasting

import (
	"errors"
	"fmt"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrInvalidCell    = errors.New("invalid cell value")
)

// PrepareError indica a coluna e a linha que impediram a transformação
type PrepareError struct {
	Err    error
	Column string
	Row    int
	Value  any
}

func (e *PrepareError) Error() string {
	if errors.Is(e.Err, ErrColumnNotFound) {
		return fmt.Sprintf("%s: %q", e.Err.Error(), e.Column)
	}
	return fmt.Sprintf("%s: coluna %q, linha %d: %T(%v)", e.Err.Error(), e.Column, e.Row, e.Value, e.Value)
}

func (e *PrepareError) Unwrap() error {
	return e.Err
}
