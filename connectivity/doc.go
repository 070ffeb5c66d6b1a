// Package connectivity tracks named network interfaces and answers one
// question: is any usable interface online right now?
//
// Interfaces are registered once with a technology class and then driven by
// their owners through SetOnline and SetOffline. An interface can be ignored,
// which forces the tracker to treat it as offline no matter what its owner
// reports; ignoring and unignoring fire events exactly as though the
// interface disconnected or connected at that moment.
//
// # Aggregate state
//
// The tracker is connected while at least one non-ignored interface is
// online. Subscribers receive an Event on every aggregate transition, naming
// the interface whose change caused it. Changes that do not flip the
// aggregate, such as a second interface coming online, are silent.
//
// # Delivery
//
// Event delivery never blocks: a subscriber whose channel buffer is full
// misses the event. Size the buffer passed to Subscribe accordingly, and use
// ResendStatus to recover the current state after a gap.
package connectivity
