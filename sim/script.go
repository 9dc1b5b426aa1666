// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sim

import (
	"log"
	"strconv"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// RunScript executes a scenario script against the board. Scripts
// drive the system from the outside: feeding serial input, driving
// pins, and pacing themselves in board ticks. When src is nil the
// script is read from the file at name.
//
// The script environment predeclares every Defines constant, plus:
//
//	feed(port, text)   queue text on a serial port's receive side
//	pin(id, level)     drive a pin; level is truthy for high
//	sleep(ticks)       pause the script for whole ticks
func RunScript(b *Board, name string, src any) (err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	pred := starlark.StringDict{}
	for key, str := range b.Defines() {
		value, perr := strconv.ParseUint(str, 0, 32)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(int64(value))
	}
	pred["feed"] = starlark.NewBuiltin("feed", b.scriptFeed)
	pred["pin"] = starlark.NewBuiltin("pin", b.scriptPin)
	pred["sleep"] = starlark.NewBuiltin("sleep", b.scriptSleep)

	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	_, err = starlark.ExecFileOptions(&opts, &thread, name, src, pred)

	return
}

func (b *Board) scriptFeed(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var port int
	var data string

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "port", &port, "text", &data)
	if err != nil {
		return starlark.None, err
	}

	p := b.Port(port)
	if p == nil {
		return starlark.None, ErrPortRange
	}

	if b.Verbose {
		log.Printf("sim: script feed %d %q", port, data)
	}

	if p.Feed([]byte(data)) > 0 {
		return starlark.None, ErrSerialOverrun
	}

	return starlark.None, nil
}

func (b *Board) scriptPin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pin int
	var level starlark.Value

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "pin", &pin, "level", &level)
	if err != nil {
		return starlark.None, err
	}

	if pin < 0 {
		return starlark.None, ErrPinRange
	}

	err = b.SetPin(uint32(pin), bool(level.Truth()))
	if err != nil {
		return starlark.None, err
	}

	return starlark.None, nil
}

func (b *Board) scriptSleep(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var ticks int

	err := starlark.UnpackArgs(fn.Name(), args, kwargs, "ticks", &ticks)
	if err != nil {
		return starlark.None, err
	}

	if ticks > 0 {
		time.Sleep(time.Duration(ticks) * b.tick())
	}

	return starlark.None, nil
}
