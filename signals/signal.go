package signals

import (
	"errors"
	"slices"
	"sync"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/deferred"
	"github.com/reusee/taibind/logs"
	"github.com/ygrebnov/errorc"
)

type Flags uint8

const (
	// Deferred connections are pushed to the deferred queue on emit.
	Deferred Flags = 1 << iota
	// OneShot connections are disconnected before their first call.
	OneShot
	// ReferenceCounted connections count connects and disconnects.
	ReferenceCounted
)

type connection struct {
	callable callables.Callable
	flags    Flags
	binds    []any
	refs     int
}

// Signal is a named list of connected callables.
type Signal struct {
	name         string
	queue        *deferred.Queue
	logger       logs.Logger
	pruneInvalid bool

	mu    sync.Mutex
	conns []*connection
	index *callables.Map[*connection]
}

func New(name string, queue *deferred.Queue, logger logs.Logger) *Signal {
	return &Signal{
		name:         name,
		queue:        queue,
		logger:       logger,
		pruneInvalid: true,
		index:        callables.NewMap[*connection](),
	}
}

func (s *Signal) Name() string {
	return s.name
}

func (s *Signal) wrap(err error, c callables.Callable) error {
	return errorc.With(
		err,
		errorc.String(ErrorFieldSignal, s.name),
		errorc.String(ErrorFieldMethod, c.String()),
	)
}

// Connect adds c. binds are appended to emitted arguments.
func (s *Signal) Connect(c callables.Callable, flags Flags, binds ...any) error {
	if c.IsNull() {
		return s.wrap(ErrNullCallable, c)
	}
	if flags&Deferred != 0 && s.queue == nil {
		return s.wrap(ErrNoQueue, c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if conn, ok := s.index.Get(c); ok {
		if flags&ReferenceCounted != 0 && conn.flags&ReferenceCounted != 0 {
			conn.refs++
			return nil
		}
		return s.wrap(ErrAlreadyConnected, c)
	}
	conn := &connection{
		callable: c,
		flags:    flags,
		binds:    binds,
		refs:     1,
	}
	s.conns = append(s.conns, conn)
	s.index.Set(c, conn)
	return nil
}

// Disconnect removes c. Reference counted connections are removed when the count drops to zero.
func (s *Signal) Disconnect(c callables.Callable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, ok := s.index.Get(c)
	if !ok {
		return s.wrap(ErrNotConnected, c)
	}
	if conn.flags&ReferenceCounted != 0 {
		conn.refs--
		if conn.refs > 0 {
			return nil
		}
	}
	s.remove(conn)
	return nil
}

func (s *Signal) remove(conn *connection) {
	s.index.Delete(conn.callable)
	s.conns = slices.DeleteFunc(s.conns, func(c *connection) bool {
		return c == conn
	})
}

func (s *Signal) IsConnected(c callables.Callable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index.Get(c)
	return ok
}

// Connections returns connected callables sorted by callables.Compare.
func (s *Signal) Connections() []callables.Callable {
	s.mu.Lock()
	ret := make([]callables.Callable, 0, len(s.conns))
	for _, conn := range s.conns {
		ret = append(ret, conn.callable)
	}
	s.mu.Unlock()
	slices.SortFunc(ret, callables.Compare)
	return ret
}

func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Emit calls connections in connect order. Failed calls do not stop the emission.
func (s *Signal) Emit(args ...any) error {
	s.mu.Lock()
	var conns []*connection
	for _, conn := range slices.Clone(s.conns) {
		if !conn.callable.IsValid() {
			if s.pruneInvalid {
				s.logger.Debug("prune invalid connection",
					"signal", s.name,
					"method", conn.callable.String(),
				)
				s.remove(conn)
			}
			continue
		}
		if conn.flags&OneShot != 0 {
			s.remove(conn)
		}
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	var errs []error
	for _, conn := range conns {
		callArgs := args
		if len(conn.binds) > 0 {
			callArgs = append(slices.Clip(args), conn.binds...)
		}
		var err error
		if conn.flags&Deferred != 0 {
			err = s.queue.Push(conn.callable, callArgs...)
		} else {
			_, err = conn.callable.CallV(callArgs)
		}
		if err != nil {
			s.logger.Error("emit",
				"signal", s.name,
				"method", conn.callable.String(),
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
