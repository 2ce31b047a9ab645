// Package module defines the feature contract used by practice composition.
package module

import (
	"net/http"

	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/observability"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Dependencies carries the shared collaborators modules mount with.
type Dependencies struct {
	Registry     *registry.Registry
	Store        widget.StateStore
	Languages    *i18n.Resolver
	Logger       *zap.Logger
	Metrics      *observability.Metrics
	Tracer       trace.Tracer
	SchemePolicy requestmeta.SchemePolicy
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
