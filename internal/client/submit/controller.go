// Package submit manages the create/edit/verify submission lifecycle: one
// request per form interaction, moving idle → in-flight → succeeded/failed.
// Success closes the form, announces a success banner, and refreshes the
// owning list so it reflects the new truth; failure announces the server's
// message, keeps the form open with the user's input intact, and leaves the
// list untouched.
package submit

import (
	"context"
	"fmt"
	"sync"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

// Kind distinguishes the three submission verbs.
type Kind int

const (
	KindCreate Kind = iota
	KindEdit
	KindVerify
)

func (k Kind) verb() string {
	switch k {
	case KindCreate:
		return "created"
	case KindEdit:
		return "updated"
	default:
		return "verified"
	}
}

func (k Kind) failureVerb() string {
	switch k {
	case KindCreate:
		return "create"
	case KindEdit:
		return "update"
	default:
		return "verify"
	}
}

// Refresher is satisfied by the list machine owning the submitted entity.
type Refresher interface {
	Fetch(ctx context.Context) error
}

// Config parameterizes one controller. P is the submission payload, R the
// record type returned by the backend.
type Config[P, R any] struct {
	// Entity names the record type in notices ("vendor", "PM record", ...).
	Entity string

	// Do dispatches the request through the bound service.
	Do func(ctx context.Context, kind Kind, payload P) (R, error)

	// Validate runs extra client-side rules after the struct tags pass.
	// Optional.
	Validate func(kind Kind, payload P) error

	// Describe summarizes a record for the success notice (name/id).
	Describe func(record R) string

	// List is refreshed after a successful submission. Optional.
	List Refresher

	// Apply performs the optimistic single-record replacement for
	// edit/verify responses that return the updated record. The refresh
	// that follows is authoritative and overwrites it. Optional.
	Apply func(record R)

	Notices Sink
	Log     logging.Logger
}

// Controller drives submissions for one form.
type Controller[P, R any] struct {
	cfg Config[P, R]

	mu       sync.Mutex
	formOpen bool
	inflight bool
}

func NewController[P, R any](cfg Config[P, R]) *Controller[P, R] {
	return &Controller[P, R]{cfg: cfg}
}

// OpenForm marks the form visible. Submissions are tied to an open form.
func (c *Controller[P, R]) OpenForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = true
}

// CloseForm dismisses the form without submitting.
func (c *Controller[P, R]) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formOpen = false
}

// FormOpen reports whether the form is currently visible.
func (c *Controller[P, R]) FormOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formOpen
}

// InFlight reports whether a submission is pending.
func (c *Controller[P, R]) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}

// Submit validates client-side, dispatches the request, and applies the
// success/failure policy. Validation failures never reach the network.
func (c *Controller[P, R]) Submit(ctx context.Context, kind Kind, payload P) (R, error) {
	var zero R

	if err := ValidateStruct(payload); err != nil {
		c.fail(err.Error())
		return zero, err
	}
	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(kind, payload); err != nil {
			c.fail(err.Error())
			return zero, err
		}
	}

	c.mu.Lock()
	c.inflight = true
	c.mu.Unlock()

	record, err := c.cfg.Do(ctx, kind, payload)

	c.mu.Lock()
	c.inflight = false
	c.mu.Unlock()

	if err != nil {
		// Server message verbatim when present, generic otherwise. The
		// form stays open so the user can correct and retry.
		msg := gateway.ServerMessage(err)
		if msg == "" {
			msg = fmt.Sprintf("Failed to %s %s.", kind.failureVerb(), c.cfg.Entity)
		}
		c.fail(msg)
		c.cfg.Log.Warn(ctx, "submission failed", "entity", c.cfg.Entity, "kind", kind.failureVerb(), "error", err)
		return zero, err
	}

	if c.cfg.Apply != nil && kind != KindCreate {
		c.cfg.Apply(record)
	}

	summary := c.cfg.Entity
	if c.cfg.Describe != nil {
		if d := c.cfg.Describe(record); d != "" {
			summary = fmt.Sprintf("%s %s", c.cfg.Entity, d)
		}
	}
	c.publish(newNotice(LevelSuccess, fmt.Sprintf("%s %s.", summary, kind.verb())))

	c.mu.Lock()
	c.formOpen = false
	c.mu.Unlock()

	if c.cfg.List != nil {
		// Authoritative refresh; on failure the list machine surfaces its
		// own error state, the submission itself has already succeeded.
		_ = c.cfg.List.Fetch(ctx)
	}

	return record, nil
}

func (c *Controller[P, R]) fail(msg string) {
	c.publish(newNotice(LevelFailure, msg))
}

func (c *Controller[P, R]) publish(n Notice) {
	if c.cfg.Notices != nil {
		c.cfg.Notices.Publish(n)
	}
}
