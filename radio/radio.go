package radio

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// MaxPayloadSize is the largest frame a modem accepts, in bytes.
const MaxPayloadSize = 255

var (
	// ErrPayloadTooLarge is returned by Send when the payload exceeds
	// MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")

	// ErrAsleep is returned by radio operations invoked while the modem is
	// in the sleep state. Call WakeUp or Standby first.
	ErrAsleep = errors.New("modem is asleep")

	// ErrNotConfigured is returned by transmit and receive operations
	// invoked before the first successful Configure call.
	ErrNotConfigured = errors.New("modem is not configured")
)

// Signal carries the reception metadata a modem reports alongside each
// received frame.
type Signal struct {
	// RSSI is the received signal strength in dBm.
	RSSI int16

	// SNR is the signal-to-noise ratio in dB.
	SNR int8
}

// String returns the signal in a compact log-friendly form.
func (s Signal) String() string {
	return fmt.Sprintf("rssi=%ddBm snr=%ddB", s.RSSI, s.SNR)
}

// ReceiveFunc handles one frame during Listen. The callback owns the
// payload slice and may retain it.
type ReceiveFunc func(payload []byte, sig Signal)

// Modem is the contract between this module and a radio driver.
//
// Implementations are expected to be safe for concurrent use by multiple
// goroutines. Blocking operations honor context cancellation and return
// ctx.Err() when interrupted.
type Modem interface {
	// Configure applies cfg to the modem. It must be called before any
	// transmit or receive operation and may be called again to retune.
	Configure(cfg Config) error

	// Send transmits a single frame and blocks until the transmission
	// completes or ctx is done. Payloads over MaxPayloadSize fail with
	// ErrPayloadTooLarge.
	Send(ctx context.Context, payload []byte) error

	// Receive blocks until one frame arrives or ctx is done, returning
	// the payload and its reception metadata.
	Receive(ctx context.Context) ([]byte, Signal, error)

	// Listen receives frames continuously, invoking fn for each one,
	// until ctx is done. It always returns the context's error.
	Listen(ctx context.Context, fn ReceiveFunc) error

	// TestCW transmits an unmodulated continuous wave at the given
	// frequency (Hz) and power (dBm) for the given duration. Intended
	// for test setups only; the carrier interferes with nearby devices.
	TestCW(ctx context.Context, frequency uint32, power int8, duration time.Duration) error

	// Sleep puts the modem into its lowest-power state. Radio operations
	// fail with ErrAsleep until WakeUp or Standby is called.
	Sleep() error

	// Standby puts the modem into the awake idle state.
	Standby() error

	// WakeUp returns the modem from sleep.
	WakeUp() error

	// SetChannel retunes the modem to the given frequency in Hz without
	// touching the rest of the configuration.
	SetChannel(frequency uint32) error
}
