package employeeform

import (
	"context"
	"sync"
	"time"

	employeeformerrors "go-employee-form/internal/employeeform/errors"
	"go-employee-form/internal/shared/apperror"

	"go.uber.org/zap"
)

const (
	DefaultNavigateDelay  = 2 * time.Second
	DefaultSuccessDisplay = 5 * time.Second
	DefaultErrorDisplay   = 5 * time.Second

	DefaultFailureMessage = "Failed to submit form. Please try again."
)

//go:generate mockgen -source=employee_form_controller.go -destination=mock/employee_form_writer_mock.go -package=mock
type Writer interface {
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, rec Record) (Record, error)
}

// Collection receives records after a successful write. *Store satisfies it.
type Collection interface {
	Append(rec Record)
	Replace(rec Record) bool
}

type Options struct {
	// NavigateDelay is how long after a success OnNavigate fires.
	NavigateDelay time.Duration
	// SuccessDisplay is how long PhaseSucceeded lasts before reverting.
	SuccessDisplay time.Duration
	// ErrorDisplay is how long PhaseFailed lasts before reverting.
	ErrorDisplay time.Duration
	// OnNavigate is optional.
	OnNavigate func()
	// FailureMessage is shown when the error carries no message of its own.
	FailureMessage string
}

func DefaultOptions() Options {
	return Options{
		NavigateDelay:  DefaultNavigateDelay,
		SuccessDisplay: DefaultSuccessDisplay,
		ErrorDisplay:   DefaultErrorDisplay,
		FailureMessage: DefaultFailureMessage,
	}
}

// Controller owns the draft, error map and submission state of one form.
// At most one submission is in flight; transient states revert through
// timers that Close cancels.
type Controller struct {
	validator *Validator
	writer    Writer
	records   Collection
	opts      Options
	logger    *zap.Logger

	mu         sync.Mutex
	draft      Record
	errs       ErrorMap
	state      State
	generation uint64
	timers     []*time.Timer
	listeners  map[int]func(State)
	nextID     int
	closed     bool
}

func NewController(
	v *Validator,
	writer Writer,
	records Collection,
	opts Options,
	logger ...*zap.Logger,
) *Controller {
	l := zap.L().Named("employeeform.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeform.controller")
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = DefaultFailureMessage
	}
	return &Controller{
		validator: v,
		writer:    writer,
		records:   records,
		opts:      opts,
		logger:    l,
		errs:      ErrorMap{},
		state:     Idle(),
		listeners: map[int]func(State){},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Draft() Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Errors returns a copy of the error map from the last validation pass.
func (c *Controller) Errors() ErrorMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(ErrorMap, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// SetField updates one draft field. Validation waits for Submit.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return employeeformerrors.ErrFormClosed
	}
	draft, err := c.draft.With(name, value)
	if err != nil {
		return err
	}
	c.draft = draft
	return nil
}

// Edit loads an existing record into the draft and clears prior errors.
func (c *Controller) Edit(rec Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return employeeformerrors.ErrFormClosed
	}
	c.draft = rec
	c.errs = ErrorMap{}
	return nil
}

// Reset empties the draft and the error map.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Record{}
	c.errs = ErrorMap{}
}

// Subscribe registers fn for every state change and returns a function
// that removes it. fn runs outside the controller lock.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Submit validates rec and, when it passes, writes it to the backend:
// Create for a record without ID, Update otherwise. The returned state is
// the one reached when Submit returns.
func (c *Controller) Submit(ctx context.Context, rec Record) (State, error) {
	trimmed, errs := c.validator.Validate(rec)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Idle(), employeeformerrors.ErrFormClosed
	}
	if c.state.Phase == PhasePending {
		st := c.state
		c.mu.Unlock()
		return st, employeeformerrors.ErrSubmissionInFlight
	}

	c.draft = trimmed
	c.errs = errs
	c.stopTimersLocked()
	c.generation++
	gen := c.generation

	if !errs.Valid() {
		c.logger.Debug("submit blocked by validation", zap.Int("fields", len(errs)))
		notify := c.transitionLocked(Idle())
		c.mu.Unlock()
		notify()
		return Idle(), errs.Err()
	}

	notify := c.transitionLocked(Pending())
	c.mu.Unlock()
	notify()

	var (
		saved Record
		err   error
	)
	if trimmed.Persisted() {
		c.logger.Debug("update employee submitted", zap.String("employee_id", trimmed.ID))
		saved, err = c.writer.Update(ctx, trimmed)
	} else {
		c.logger.Debug("create employee submitted", zap.String("employee_code", trimmed.EmployeeCode))
		saved, err = c.writer.Create(ctx, trimmed)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("submission finished after close", zap.Error(err))
		return Idle(), employeeformerrors.ErrFormClosed
	}

	if err != nil {
		st := Failed(c.failureMessage(err))
		c.logger.Warn("submit employee failed", zap.String("message", st.Message), zap.Error(err))
		notify = c.transitionLocked(st)
		c.scheduleLocked(c.opts.ErrorDisplay, func() { c.expire(gen) })
		c.mu.Unlock()
		notify()
		return st, err
	}

	if c.records != nil {
		if trimmed.Persisted() {
			patched := trimmed
			if saved.ID == trimmed.ID {
				patched = saved
			}
			if !c.records.Replace(patched) {
				c.records.Append(patched)
			}
		} else {
			if saved.ID == "" {
				saved = trimmed
			}
			c.records.Append(saved)
		}
	}

	c.draft = Record{}
	c.errs = ErrorMap{}
	notify = c.transitionLocked(Succeeded())
	if c.opts.OnNavigate != nil {
		navigate := c.opts.OnNavigate
		c.scheduleLocked(c.opts.NavigateDelay, func() { c.fire(gen, navigate) })
	}
	c.scheduleLocked(c.opts.SuccessDisplay, func() { c.expire(gen) })
	c.mu.Unlock()
	notify()

	c.logger.Info("submit employee success", zap.String("employee_id", saved.ID))
	return Succeeded(), nil
}

// Close cancels pending timers and drops listeners. A submission still in
// flight completes its request but no longer touches the form.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimersLocked()
	c.listeners = map[int]func(State){}
}

func (c *Controller) failureMessage(err error) string {
	if appErr, ok := apperror.As(err); ok && appErr.Message != "" {
		return appErr.Message
	}
	return c.opts.FailureMessage
}

// transitionLocked sets the state and returns a function that notifies
// listeners; call it after releasing the lock.
func (c *Controller) transitionLocked(st State) func() {
	c.state = st
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(st)
		}
	}
}

func (c *Controller) scheduleLocked(d time.Duration, fn func()) {
	c.timers = append(c.timers, time.AfterFunc(d, fn))
}

func (c *Controller) stopTimersLocked() {
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || !c.state.Transient() {
		c.mu.Unlock()
		return
	}
	notify := c.transitionLocked(Idle())
	c.mu.Unlock()
	notify()
}

func (c *Controller) fire(gen uint64, fn func()) {
	c.mu.Lock()
	stale := c.closed || gen != c.generation
	c.mu.Unlock()
	if !stale {
		fn()
	}
}
