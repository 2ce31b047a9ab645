// Package widget defines the runtime contract shared by every practice problem
// and the server that mounts them.
package widget

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// ErrUnknownAction is returned by Handle for an action the widget does not
// define.
var ErrUnknownAction = errors.New("unknown widget action")

// Component is one mountable practice problem.
//
// View renders the current state of inst. Handle applies one named action with
// its submitted form values and persists the resulting state.
type Component interface {
	View(ctx context.Context, inst Instance) (templ.Component, error)
	Handle(ctx context.Context, inst Instance, action string, form url.Values) error
}

// Instance is one mounted copy of a component, scoped to a browser session.
type Instance struct {
	WidgetID  string
	SessionID string
	// ActionURL builds the POST target for a named action.
	ActionURL func(action string) string
	Store     StateStore
	// Notify publishes a one-shot notice for the next render.
	Notify func(message string)
}

// Key returns the state key for inst.
func (inst Instance) Key() Key {
	return Key{SessionID: inst.SessionID, WidgetID: inst.WidgetID}
}

// Action returns the action URL, or an empty string when no builder is set.
func (inst Instance) Action(action string) string {
	if inst.ActionURL == nil {
		return ""
	}
	return inst.ActionURL(action)
}

// Notice forwards message to the instance notifier when one is set.
func (inst Instance) Notice(message string) {
	if inst.Notify != nil && message != "" {
		inst.Notify(message)
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Dependencies carries the shared collaborators widgets are built with.
type Dependencies struct {
	HTTPClient   *http.Client
	UsersURL     string
	FetchTimeout time.Duration
	Clock        Clock
	Logger       *zap.Logger
	Tracer       trace.Tracer
}

// WithDefaults fills any unset dependency with a working default.
func (d Dependencies) WithDefaults() Dependencies {
	if d.HTTPClient == nil {
		d.HTTPClient = http.DefaultClient
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Tracer == nil {
		d.Tracer = noop.NewTracerProvider().Tracer("widget")
	}
	return d
}
