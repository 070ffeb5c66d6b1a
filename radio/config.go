package radio

import "fmt"

type (
	// Bandwidth is the LoRa signal bandwidth.
	Bandwidth uint8

	// SpreadingFactor is the LoRa data rate. Higher factors trade
	// throughput for range.
	SpreadingFactor uint8

	// CodingRate is the LoRa forward-error-correction rate.
	CodingRate uint8
)

const (
	Bandwidth125 Bandwidth = iota // Bandwidth125 is a 125 kHz channel.
	Bandwidth250                  // Bandwidth250 is a 250 kHz channel.
	Bandwidth500                  // Bandwidth500 is a 500 kHz channel.
)

const (
	SF6 SpreadingFactor = iota + 6
	SF7
	SF8
	SF9
	SF10
	SF11
	SF12
)

const (
	CodingRate4_5 CodingRate = iota + 1 // CodingRate4_5 is 4/5, the least redundancy.
	CodingRate4_6
	CodingRate4_7
	CodingRate4_8 // CodingRate4_8 is 4/8, the most redundancy.
)

func (b Bandwidth) String() string {
	switch b {
	case Bandwidth125:
		return "125kHz"
	case Bandwidth250:
		return "250kHz"
	case Bandwidth500:
		return "500kHz"
	default:
		return "Unknown"
	}
}

func (s SpreadingFactor) String() string {
	if s < SF6 || s > SF12 {
		return "Unknown"
	}

	return fmt.Sprintf("SF%d", uint8(s))
}

func (c CodingRate) String() string {
	switch c {
	case CodingRate4_5:
		return "4/5"
	case CodingRate4_6:
		return "4/6"
	case CodingRate4_7:
		return "4/7"
	case CodingRate4_8:
		return "4/8"
	default:
		return "Unknown"
	}
}

// Config holds the modem settings applied by Modem.Configure.
type Config struct {
	// Frequency is the transceive frequency in Hz.
	Frequency uint32

	// Bandwidth is the signal bandwidth.
	Bandwidth Bandwidth

	// SpreadingFactor is the data rate.
	SpreadingFactor SpreadingFactor

	// CodingRate is the forward-error-correction rate.
	CodingRate CodingRate

	// PreambleLength is the number of preamble symbols sent ahead of each
	// frame.
	PreambleLength uint16

	// TXPower is the transmission power in dBm.
	TXPower int8

	// IQInverted swaps the in-phase and quadrature signals. Inverting IQ
	// on one direction separates uplink from downlink traffic sharing a
	// frequency.
	IQInverted bool

	// PublicNetwork selects the public-network sync word instead of the
	// private one used for peer-to-peer links.
	PublicNetwork bool
}

// Validate reports whether the configuration can be applied to a modem.
func (c Config) Validate() error {
	if c.Frequency == 0 {
		return fmt.Errorf("frequency must be set")
	}

	switch c.Bandwidth {
	case Bandwidth125, Bandwidth250, Bandwidth500:
	default:
		return fmt.Errorf("invalid bandwidth: %d", c.Bandwidth)
	}

	if c.SpreadingFactor < SF6 || c.SpreadingFactor > SF12 {
		return fmt.Errorf("invalid spreading factor: %d", c.SpreadingFactor)
	}

	switch c.CodingRate {
	case CodingRate4_5, CodingRate4_6, CodingRate4_7, CodingRate4_8:
	default:
		return fmt.Errorf("invalid coding rate: %d", c.CodingRate)
	}

	return nil
}

// String returns the tuning parameters in a compact log-friendly form.
func (c Config) String() string {
	return fmt.Sprintf("%gMHz %s/%s CR%s %ddBm",
		float64(c.Frequency)/1e6, c.SpreadingFactor, c.Bandwidth, c.CodingRate, c.TXPower)
}
