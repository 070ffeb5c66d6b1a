package connectivity

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownInterface is returned when an operation names an
	// interface that was never registered.
	ErrUnknownInterface = errors.New("unknown interface")

	// ErrAlreadyRegistered is returned by Register when the name is
	// already taken.
	ErrAlreadyRegistered = errors.New("interface already registered")
)

// Class groups interfaces by technology, such as "lora" or "ethernet".
// Class-level ignore operations apply to every interface of the class.
type Class string

// Event is one aggregate connectivity transition.
type Event struct {
	// Connected is the aggregate state after the transition.
	Connected bool

	// Iface names the interface whose change flipped the aggregate.
	// Empty for events re-dispatched by ResendStatus.
	Iface string
}

// ifaceState is the tracker's view of one registered interface.
type ifaceState struct {
	class   Class
	online  bool
	ignored bool
}

// usable reports whether the interface counts toward the aggregate.
func (s *ifaceState) usable() bool {
	return s.online && !s.ignored
}

// Tracker maintains the registered interfaces, the aggregate state, and the
// subscriber list. The zero value is not usable; construct with NewTracker.
//
// All methods are safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	ifaces map[string]*ifaceState
	subs   map[uint64]chan Event
	nextID uint64
}

// NewTracker creates an empty tracker. With no interfaces registered the
// aggregate state is disconnected.
func NewTracker() *Tracker {
	return &Tracker{
		ifaces: make(map[string]*ifaceState),
		subs:   make(map[uint64]chan Event),
	}
}

// Register adds an interface under the given technology class. New
// interfaces start offline and not ignored.
func (t *Tracker) Register(name string, class Class) error {
	if name == "" {
		return fmt.Errorf("interface name must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.ifaces[name]; ok {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	t.ifaces[name] = &ifaceState{class: class}

	return nil
}

// SetOnline marks the interface as online. Called by the interface owner
// when its link comes up.
func (t *Tracker) SetOnline(name string) error {
	return t.apply(name, func(s *ifaceState) { s.online = true })
}

// SetOffline marks the interface as offline.
func (t *Tracker) SetOffline(name string) error {
	return t.apply(name, func(s *ifaceState) { s.online = false })
}

// Ignore forces the interface to count as offline regardless of what its
// owner reports. If the interface was holding the aggregate up, subscribers
// see a disconnect event as though it went offline at this moment.
func (t *Tracker) Ignore(name string) error {
	return t.apply(name, func(s *ifaceState) { s.ignored = true })
}

// Unignore lifts Ignore. If the interface is online, subscribers see events
// as though it connected at this moment.
func (t *Tracker) Unignore(name string) error {
	return t.apply(name, func(s *ifaceState) { s.ignored = false })
}

// IsIgnored reports whether the interface is currently ignored.
func (t *Tracker) IsIgnored(name string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.ifaces[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownInterface, name)
	}

	return s.ignored, nil
}

// IgnoreClass ignores every interface currently registered under the class.
// Interfaces registered later are not affected.
func (t *Tracker) IgnoreClass(class Class) {
	t.applyClass(class, func(s *ifaceState) { s.ignored = true })
}

// UnignoreClass lifts Ignore from every interface currently registered
// under the class.
func (t *Tracker) UnignoreClass(class Class) {
	t.applyClass(class, func(s *ifaceState) { s.ignored = false })
}

// Connected reports the aggregate state: true while at least one
// non-ignored interface is online.
func (t *Tracker) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.connectedLocked()
}

// ResendStatus dispatches the current aggregate state to all subscribers,
// whether or not it changed. The event carries no interface name.
func (t *Tracker) ResendStatus() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dispatchLocked(Event{Connected: t.connectedLocked()})
}

// Subscribe registers an event channel with the given buffer size and
// returns it with a cancel function. Cancel is idempotent; it removes the
// subscription and closes the channel.
//
// Delivery is non-blocking. When the buffer is full the subscriber misses
// the event, so size the buffer for the burst the caller can fall behind by.
func (t *Tracker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 0 {
		buffer = 0
	}

	t.mu.Lock()
	ch := make(chan Event, buffer)
	id := t.nextID
	t.nextID++
	t.subs[id] = ch
	t.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			delete(t.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// apply runs one state change on a registered interface and dispatches an
// event if the change flipped the aggregate.
func (t *Tracker) apply(name string, change func(*ifaceState)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.ifaces[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInterface, name)
	}

	before := t.connectedLocked()
	change(s)
	after := t.connectedLocked()

	if before != after {
		t.dispatchLocked(Event{Connected: after, Iface: name})
	}

	return nil
}

// applyClass runs one state change on every interface of the class. Changes
// apply one interface at a time, so at most one aggregate transition fires
// and it names the interface that flipped the state.
func (t *Tracker) applyClass(class Class, change func(*ifaceState)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name, s := range t.ifaces {
		if s.class != class {
			continue
		}

		before := t.connectedLocked()
		change(s)
		after := t.connectedLocked()

		if before != after {
			t.dispatchLocked(Event{Connected: after, Iface: name})
		}
	}
}

func (t *Tracker) connectedLocked() bool {
	for _, s := range t.ifaces {
		if s.usable() {
			return true
		}
	}

	return false
}

func (t *Tracker) dispatchLocked(ev Event) {
	for _, ch := range t.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
