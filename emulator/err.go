package emulator

import (
	"github.com/jking323/risc-4/translate"
)

var f = translate.From

// ErrWatch locates an error in a watch expression.
type ErrWatch struct {
	Name string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch %v: %v", err.Name, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}

// ErrWatchExpr reports an expression that produced no value.
type ErrWatchExpr string

func (err ErrWatchExpr) Error() string {
	return f("'%v' is not a predicate", string(err))
}
