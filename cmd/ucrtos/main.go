// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ezrec/ucrtos/internal/config"
	"github.com/ezrec/ucrtos/irq"
	"github.com/ezrec/ucrtos/pattern"
	"github.com/ezrec/ucrtos/periph"
	"github.com/ezrec/ucrtos/rtos"
	"github.com/ezrec/ucrtos/sim"
	"github.com/ezrec/ucrtos/text"
)

const SETTLE_TICKS = 32 // Drain allowance after input ends

// helloGreeter claims HELLO lines and answers with a greeting.
type helloGreeter struct {
	rx *periph.UARTRX
	tx *periph.UARTTX
}

func (hg *helloGreeter) Update(sender *pattern.Observed) bool {
	if !strings.HasPrefix(hg.rx.Line.String(), "HELLO") {
		return false
	}

	hg.tx.TransmitString("WORLD\r\n")

	return true
}

// lineEcho repeats any line back out.
type lineEcho struct {
	rx *periph.UARTRX
	tx *periph.UARTTX
}

func (le *lineEcho) Update(sender *pattern.Observed) bool {
	le.tx.Transmit(le.rx.Line)

	return true
}

// pinReporter announces pin events as text lines.
type pinReporter struct {
	pw *periph.PinWatch
	tx *periph.UARTTX
}

func (pr *pinReporter) Update(sender *pattern.Observed) bool {
	var buf [16]byte

	msg := append([]byte("PIN "), text.FromInt(buf[:], int32(pr.pw.Pin), 10)...)
	msg = append(msg, '\r', '\n')
	pr.tx.TransmitBytes(msg)

	return true
}

// feedAll pushes data into a receive buffer, pacing itself whenever
// the buffer overruns.
func feedAll(port *sim.Port, data []byte, pace time.Duration) {
	for len(data) > 0 {
		dropped := port.Feed(data)
		data = data[len(data)-dropped:]
		if dropped > 0 {
			time.Sleep(pace)
		}
	}
}

func main() {
	var configPath string
	var scenario string
	var output string
	var verbose bool

	flag.StringVar(&configPath, "f", "", "Configuration file (.yaml)")
	flag.StringVar(&scenario, "s", "", "Scenario script (.star)")
	flag.StringVar(&output, "o", "-", "Transmit output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	if scenario == "" {
		scenario = cfg.Scenario
	}

	board := sim.NewBoard()
	board.Verbose = cfg.Board.Verbose || verbose
	board.TickPeriod = time.Duration(cfg.Board.TickMs) * time.Millisecond

	port := board.Port(cfg.Serial.Port)

	if output == "-" {
		port.Tee = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		port.Tee = ouf
	}

	irq.SetAttacher(board)

	rx := periph.NewUARTRX(board, port, rtos.Ticks(cfg.Serial.RxDelay))
	tx := periph.NewUARTTX(board, port, uint(cfg.Serial.TxQueue))

	rx.AppendObserver(&helloGreeter{rx: rx, tx: tx})
	rx.AppendObserver(&lineEcho{rx: rx, tx: tx})

	priority := rtos.Priority(cfg.Serial.Priority)

	if !tx.Join(priority, periph.STACK_UART_TX) {
		log.Fatalf("uarttx: start failed")
	}
	if !rx.Join(priority, periph.STACK_UART_RX) {
		log.Fatalf("uartrx: start failed")
	}

	if len(cfg.Watch.Pins) != 0 {
		pins := make([]uint32, 0, len(cfg.Watch.Pins))
		for _, pin := range cfg.Watch.Pins {
			pins = append(pins, uint32(pin))
		}

		pw := periph.NewPinWatch(board, cfg.Watch.PinMode(), pins...)
		pw.AppendObserver(&pinReporter{pw: pw, tx: tx})

		if !pw.Join(priority, periph.STACK_PINWATCH) {
			log.Fatalf("pinwatch: start failed")
		}
	}

	if scenario != "" {
		if err := sim.RunScript(board, scenario, nil); err != nil {
			log.Fatal(err)
		}
	} else {
		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				feedAll(port, buf[:n], board.TickPeriod)
			}
			if err != nil {
				break
			}
		}
	}

	// Let the tasks drain what the input queued.
	for port.Available() > 0 {
		time.Sleep(board.TickPeriod)
	}
	time.Sleep(SETTLE_TICKS * board.TickPeriod)
}
