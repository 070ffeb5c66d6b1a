package radio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/telwire/senmlcbor/internal/options"
)

// loopbackSettings holds the construction-time options shared by both
// halves of a loopback pair.
type loopbackSettings struct {
	signal     Signal
	queueDepth int
}

// LoopbackOption represents a functional option for configuring a loopback pair.
// This is a type alias for the generic Option interface specialized for loopbackSettings.
type LoopbackOption = options.Option[*loopbackSettings]

// WithSignal sets the reception metadata both halves report for delivered
// frames. The default is a strong bench link of -45 dBm at 10 dB SNR.
func WithSignal(sig Signal) LoopbackOption {
	return options.NoError(func(s *loopbackSettings) {
		s.signal = sig
	})
}

// WithQueueDepth sets how many frames each half buffers before Send blocks.
// The default depth of 1 mirrors a modem holding a single frame.
func WithQueueDepth(depth int) LoopbackOption {
	return options.New(func(s *loopbackSettings) error {
		if depth < 1 {
			return fmt.Errorf("queue depth must be positive, got %d", depth)
		}
		s.queueDepth = depth

		return nil
	})
}

// frame is one payload in flight between loopback halves.
type frame struct {
	payload []byte
	signal  Signal
}

// Loopback is an in-memory Modem backed by its peer half instead of
// hardware. Frames sent on one half arrive on the other, stamped with the
// configured reception metadata.
//
// A Loopback is safe for concurrent use. Power state and configuration are
// checked when a call starts; a modem put to sleep mid-Listen keeps
// delivering until the context ends.
type Loopback struct {
	mu         sync.Mutex
	cfg        Config
	configured bool
	asleep     bool

	signal Signal
	rx     chan frame
	peer   *Loopback
}

var _ Modem = (*Loopback)(nil)

// NewLoopbackPair creates two connected in-memory modems. Frames sent on
// either half arrive on the other.
//
// Parameters:
//   - opts: Optional pair configuration (reception metadata, queue depth)
//
// Returns:
//   - *Loopback: First half of the pair
//   - *Loopback: Second half of the pair
//   - error: An option rejected its value
func NewLoopbackPair(opts ...LoopbackOption) (*Loopback, *Loopback, error) {
	settings := &loopbackSettings{
		signal:     Signal{RSSI: -45, SNR: 10},
		queueDepth: 1,
	}
	if err := options.Apply(settings, opts...); err != nil {
		return nil, nil, err
	}

	a := &Loopback{signal: settings.signal, rx: make(chan frame, settings.queueDepth)}
	b := &Loopback{signal: settings.signal, rx: make(chan frame, settings.queueDepth)}
	a.peer, b.peer = b, a

	return a, b, nil
}

// Configure applies cfg after validating it. Configuration is allowed in
// any power state and may be repeated to retune.
func (l *Loopback) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cfg = cfg
	l.configured = true

	return nil
}

// Config returns the active modem configuration.
func (l *Loopback) Config() Config {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cfg
}

// Send copies the payload and delivers it to the peer half, blocking until
// the peer has queue room or ctx is done.
func (l *Loopback) Send(ctx context.Context, payload []byte) error {
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, len(payload), MaxPayloadSize)
	}
	if err := l.ready(); err != nil {
		return err
	}

	// The caller may reuse its buffer as soon as Send returns.
	buf := make([]byte, len(payload))
	copy(buf, payload)

	select {
	case l.peer.rx <- frame{payload: buf, signal: l.peer.signal}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks until one frame arrives from the peer or ctx is done.
func (l *Loopback) Receive(ctx context.Context) ([]byte, Signal, error) {
	if err := l.ready(); err != nil {
		return nil, Signal{}, err
	}

	select {
	case f := <-l.rx:
		return f.payload, f.signal, nil
	case <-ctx.Done():
		return nil, Signal{}, ctx.Err()
	}
}

// Listen delivers frames to fn until ctx is done, then returns ctx.Err().
func (l *Loopback) Listen(ctx context.Context, fn ReceiveFunc) error {
	if err := l.ready(); err != nil {
		return err
	}

	for {
		select {
		case f := <-l.rx:
			fn(f.payload, f.signal)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// TestCW holds an unmodulated carrier for the given duration. The loopback
// transmits nothing; it blocks for the duration to keep the timing contract.
func (l *Loopback) TestCW(ctx context.Context, _ uint32, _ int8, duration time.Duration) error {
	if err := l.awake(); err != nil {
		return err
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sleep puts the modem into the sleep state.
func (l *Loopback) Sleep() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.asleep = true

	return nil
}

// Standby puts the modem into the awake idle state.
func (l *Loopback) Standby() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.asleep = false

	return nil
}

// WakeUp returns the modem from sleep.
func (l *Loopback) WakeUp() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.asleep = false

	return nil
}

// SetChannel retunes to the given frequency, keeping the rest of the
// active configuration.
func (l *Loopback) SetChannel(frequency uint32) error {
	if frequency == 0 {
		return fmt.Errorf("frequency must be set")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.asleep {
		return ErrAsleep
	}
	if !l.configured {
		return ErrNotConfigured
	}
	l.cfg.Frequency = frequency

	return nil
}

// ready reports whether transmit and receive operations may proceed.
func (l *Loopback) ready() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.asleep {
		return ErrAsleep
	}
	if !l.configured {
		return ErrNotConfigured
	}

	return nil
}

// awake reports whether the modem is out of the sleep state. TestCW needs
// no LoRa configuration, only an awake radio.
func (l *Loopback) awake() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.asleep {
		return ErrAsleep
	}

	return nil
}
