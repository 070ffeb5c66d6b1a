// Package radio defines the modem surface that carries encoded packs over
// the air: the Modem interface, the modem configuration types, and the
// reception metadata attached to every received frame.
//
// The codec never touches this package. Encoded packs are opaque byte
// payloads here; the uplink package is the only place the two meet.
//
// # Drivers
//
// Modem is the driver contract. Hardware implementations live outside this
// module; the in-memory Loopback pair ships here for tests and examples.
// Blocking operations take a context.Context, and cancellation replaces the
// callback-removal and timeout parameters a hardware API would carry.
//
// # Payload limit
//
// Frames are limited to MaxPayloadSize bytes, the PHY-layer ceiling.
// Send rejects oversized payloads with ErrPayloadTooLarge before touching
// the air.
package radio
