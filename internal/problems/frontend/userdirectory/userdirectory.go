// Package userdirectory implements the filterable user directory.
package userdirectory

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrorMessage is shown when the user list cannot be loaded.
const ErrorMessage = "Error fetching the users list!"

// State is the directory state for one mount.
type State struct {
	MountID string `json:"mount_id"`
	Query   string `json:"query"`
	Users   []User `json:"users"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// New starts a mount in the loading state.
func New() State {
	return State{MountID: uuid.NewString(), Loading: true}
}

// Filter returns users whose name contains query, ignoring case.
func Filter(users []User, query string) []User {
	needle := strings.ToLower(query)
	out := make([]User, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			out = append(out, user)
		}
	}
	return out
}

// Component adapts State to the widget runtime.
type Component struct {
	fetcher Fetcher
	logger  *zap.Logger
	group   *singleflight.Group
}

// NewComponent returns a directory loading users through fetcher.
func NewComponent(fetcher Fetcher, logger *zap.Logger) *Component {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Component{fetcher: fetcher, logger: logger, group: &singleflight.Group{}}
}

// View renders the directory, mounting it on first view.
func (c *Component) View(ctx context.Context, inst widget.Instance) (templ.Component, error) {
	state, err := widget.Mount(ctx, inst, New)
	if err != nil {
		return nil, err
	}
	return view(inst, state), nil
}

// Handle applies load or filter.
func (c *Component) Handle(ctx context.Context, inst widget.Instance, action string, form url.Values) error {
	switch action {
	case "load":
		return c.load(ctx, inst)
	case "filter":
		return widget.Update(ctx, inst, New, func(state State) (State, error) {
			state.Query = form.Get("query")
			return state, nil
		})
	default:
		return fmt.Errorf("%w: %q", widget.ErrUnknownAction, action)
	}
}

// load fetches users for the current mount. Concurrent loads for one mount
// share a single request; a result that arrives after the mount was replaced
// is dropped.
func (c *Component) load(ctx context.Context, inst widget.Instance) error {
	state, err := widget.Mount(ctx, inst, New)
	if err != nil {
		return err
	}
	if !state.Loading {
		return nil
	}
	mountID := state.MountID

	key := inst.WidgetID + "/" + inst.SessionID + "/" + mountID
	result, fetchErr, _ := c.group.Do(key, func() (any, error) {
		return c.fetcher.FetchUsers(context.WithoutCancel(ctx))
	})

	return widget.Exclusive(inst, func() error {
		latest, ok, err := widget.Lookup[State](ctx, inst)
		if err != nil {
			return err
		}
		if !ok || latest.MountID != mountID {
			c.logger.Debug("discarding users for replaced mount", zap.String("widget", inst.WidgetID), zap.String("mount_id", mountID))
			return nil
		}
		if !latest.Loading {
			return nil
		}

		latest.Loading = false
		if fetchErr != nil {
			c.logger.Warn("fetch users", zap.String("widget", inst.WidgetID), zap.Error(fetchErr))
			latest.Error = ErrorMessage
		} else {
			latest.Error = ""
			latest.Users, _ = result.([]User)
		}
		return widget.Save(ctx, inst, latest)
	})
}

func view(inst widget.Instance, state State) templ.Component {
	return widget.Frame(inst, "user-directory", func(_ context.Context, m *widget.Markup) {
		if state.Loading {
			m.Raw("<p>Loading...</p>")
			m.Raw(`<form method="post" data-async data-autoload`).Attr("action", inst.Action("load")).Raw(">")
			m.Raw(`<noscript><button type="submit">Load users</button></noscript></form>`)
			return
		}
		if state.Error != "" {
			m.Raw("<p>").Text(state.Error).Raw("</p>")
			return
		}
		m.Raw("<h1>User Directory</h1>")
		m.Raw(`<form method="post" data-async`).Attr("action", inst.Action("filter")).Raw(">")
		m.Raw(`<input type="text" name="query" aria-label="Filter by name"`).Attr("value", state.Query).
			Attr("data-sync", inst.Action("filter")).Raw("></form>")
		m.Raw("<h2>").Text(state.Query).Raw("</h2>")
		users := Filter(state.Users, state.Query)
		if len(users) == 0 {
			m.Raw("<p>No users found.</p>")
			return
		}
		m.Raw("<ul>")
		for _, user := range users {
			m.Raw("<li>").Text(user.Name + " - " + user.Email).Raw("</li>")
		}
		m.Raw("</ul>")
	})
}
