// Package uplink glues the codec to a radio modem: packs go out as encoded
// frames and frames come back as packs with their reception metadata.
//
// The Reporter owns neither scheduling nor reliability. It performs no
// retries and waits for no acknowledgements; callers decide when to send
// and what a lost frame costs. An optional connectivity gate makes Send
// fail fast with ErrOffline instead of keying the radio while no usable
// link is up.
package uplink
