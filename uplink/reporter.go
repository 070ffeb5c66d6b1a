package uplink

import (
	"context"
	"errors"
	"fmt"

	"github.com/telwire/senmlcbor/codec"
	"github.com/telwire/senmlcbor/connectivity"
	"github.com/telwire/senmlcbor/internal/options"
	"github.com/telwire/senmlcbor/radio"
	"github.com/telwire/senmlcbor/senml"
)

// ErrOffline is returned by Send when a connectivity gate is configured and
// no usable interface is online.
var ErrOffline = errors.New("no connectivity")

// ReporterOption represents a functional option for configuring a Reporter.
// This is a type alias for the generic Option interface specialized for Reporter.
type ReporterOption = options.Option[*Reporter]

// WithConnectivityGate attaches a connectivity tracker to the reporter.
// While the tracker reports no usable interface online, Send fails fast
// with ErrOffline before encoding anything. Receive is never gated.
func WithConnectivityGate(tracker *connectivity.Tracker) ReporterOption {
	return options.New(func(r *Reporter) error {
		if tracker == nil {
			return fmt.Errorf("connectivity gate requires a tracker")
		}
		r.gate = tracker

		return nil
	})
}

// Reporter carries packs over a radio modem, one encoded frame per pack.
//
// A Reporter is stateless apart from its configuration and is safe for
// concurrent use whenever the underlying modem is.
type Reporter struct {
	modem radio.Modem
	gate  *connectivity.Tracker
}

// NewReporter creates a Reporter on top of the given modem.
//
// Parameters:
//   - modem: Radio driver carrying the frames; must not be nil
//   - opts: Optional reporter configuration (connectivity gate)
//
// Returns:
//   - *Reporter: The configured reporter
//   - error: Nil modem, or an option rejected its value
func NewReporter(modem radio.Modem, opts ...ReporterOption) (*Reporter, error) {
	if modem == nil {
		return nil, fmt.Errorf("modem must not be nil")
	}

	r := &Reporter{modem: modem}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Send encodes the pack and transmits it as a single frame.
//
// The gate, when configured, is checked first so an offline device spends
// no work on encoding. Encoded packs beyond radio.MaxPayloadSize fail with
// radio.ErrPayloadTooLarge before the modem sees them; the caller must
// split its data across smaller packs.
func (r *Reporter) Send(ctx context.Context, pack senml.Pack) error {
	if r.gate != nil && !r.gate.Connected() {
		return ErrOffline
	}

	data, err := codec.Encode(pack)
	if err != nil {
		return fmt.Errorf("encode pack: %w", err)
	}

	if len(data) > radio.MaxPayloadSize {
		return fmt.Errorf("%w: encoded pack is %d bytes, frame limit is %d",
			radio.ErrPayloadTooLarge, len(data), radio.MaxPayloadSize)
	}

	return r.modem.Send(ctx, data)
}

// Receive blocks for one frame and decodes it into a pack.
//
// The reception metadata is returned even when decoding fails, so callers
// can log the signal of a corrupt frame.
func (r *Reporter) Receive(ctx context.Context) (senml.Pack, radio.Signal, error) {
	data, sig, err := r.modem.Receive(ctx)
	if err != nil {
		return senml.Pack{}, radio.Signal{}, err
	}

	pack, err := codec.Decode(data)
	if err != nil {
		return senml.Pack{}, sig, fmt.Errorf("decode frame: %w", err)
	}

	return pack, sig, nil
}
