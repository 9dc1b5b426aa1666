package sim

import (
	"errors"

	"github.com/ezrec/ucrtos/translate"
)

var f = translate.From

var (
	// Board errors
	ErrPinRange      = errors.New(f("pin out of range"))
	ErrPortRange     = errors.New(f("serial port out of range"))
	ErrSerialOverrun = errors.New(f("serial receive overrun"))
)

// ErrScript locates a scenario script failure.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %s: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
