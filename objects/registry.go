package objects

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

var registrySerial atomic.Uint64

type slot struct {
	generation uint32
	object     Object
}

// Registry maps IDs to live objects.
// An ID is never reissued: unregistering bumps the slot generation, and a slot
// whose generation is exhausted is retired instead of reused.
type Registry struct {
	serial uint64
	mu     sync.RWMutex
	slots  []slot
	free   []uint32
	count  int
}

func NewRegistry() *Registry {
	return &Registry{
		serial: registrySerial.Add(1),
	}
}

// Serial distinguishes registries within one process.
func (r *Registry) Serial() uint64 {
	return r.serial
}

func (r *Registry) Register(obj Object) ID {
	base := obj.ObjectBase()
	r.mu.Lock()
	defer r.mu.Unlock()

	if base.registry != nil {
		panic(fmt.Errorf("object %v already registered", base.id))
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		if uint64(len(r.slots)) >= math.MaxUint32 {
			panic(fmt.Errorf("registry exhausted"))
		}
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[idx]
	s.generation++
	s.object = obj
	r.count++

	base.id = makeID(idx, s.generation)
	base.registry = r
	return base.id
}

// Unregister destroys the object's registration.
// Lookups of its id fail from now on, and the object may be registered again
// under a new id.
func (r *Registry) Unregister(id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotOf(id)
	if s == nil {
		return false
	}
	base := s.object.ObjectBase()
	base.id = 0
	base.registry = nil
	s.object = nil
	r.count--
	if s.generation == math.MaxUint32 {
		// retired
		return true
	}
	r.free = append(r.free, id.slot())
	return true
}

func (r *Registry) Lookup(id ID) (Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.slotOf(id)
	if s == nil {
		return nil, false
	}
	return s.object, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

func (r *Registry) slotOf(id ID) *slot {
	if !id.IsValid() {
		return nil
	}
	idx := id.slot()
	if int(idx) >= len(r.slots) {
		return nil
	}
	s := &r.slots[idx]
	if s.object == nil || s.generation != id.generation() {
		return nil
	}
	return s
}
