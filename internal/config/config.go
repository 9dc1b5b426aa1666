// Package config loads the host-run configuration from defaults, an
// optional YAML file, and UCRTOS_ environment variables, validating
// the result.
package config

import (
	"github.com/ezrec/ucrtos/irq"
)

// Config holds the complete host-run configuration.
type Config struct {
	Board    BoardConfig  `mapstructure:"board" validate:"required"`
	Serial   SerialConfig `mapstructure:"serial" validate:"required"`
	Watch    WatchConfig  `mapstructure:"watch"`
	Scenario string       `mapstructure:"scenario"`
}

// BoardConfig shapes the simulated board.
type BoardConfig struct {
	TickMs  int  `mapstructure:"tick_ms" validate:"required,gte=1,lte=1000"`
	Verbose bool `mapstructure:"verbose"`
}

// SerialConfig shapes the line endpoints on one serial port.
type SerialConfig struct {
	Port     int `mapstructure:"port" validate:"gte=0,lt=2"`
	RxDelay  int `mapstructure:"rx_delay" validate:"gte=0,lte=255"`
	TxQueue  int `mapstructure:"tx_queue" validate:"required,gte=1,lte=32"`
	Priority int `mapstructure:"priority" validate:"gte=0,lte=16"`
}

// WatchConfig shapes the optional pin watcher. No pins, no watcher.
type WatchConfig struct {
	Pins []int  `mapstructure:"pins" validate:"dive,gte=0,lt=24"`
	Mode string `mapstructure:"mode" validate:"omitempty,oneof=low change rising falling high"`
}

// PinMode maps the configured trigger mode to the interrupt constant.
// Unset falls back to rising.
func (wc *WatchConfig) PinMode() irq.PinMode {
	switch wc.Mode {
	case "low":
		return irq.PINMODE_LOW
	case "change":
		return irq.PINMODE_CHANGE
	case "falling":
		return irq.PINMODE_FALLING
	case "high":
		return irq.PINMODE_HIGH
	}

	return irq.PINMODE_RISING
}
