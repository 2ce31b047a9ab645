package userdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultURL is the public endpoint the directory lists.
const DefaultURL = "https://jsonplaceholder.typicode.com/users"

// User is one directory record.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Fetcher loads the user list.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// HTTPFetcher loads users over HTTP.
type HTTPFetcher struct {
	Client  *http.Client
	URL     string
	Timeout time.Duration
	Tracer  trace.Tracer
}

// FetchUsers issues a GET and decodes the JSON array body.
func (f HTTPFetcher) FetchUsers(ctx context.Context) (users []User, err error) {
	endpoint := f.URL
	if endpoint == "" {
		endpoint = DefaultURL
	}
	if f.Tracer != nil {
		var span trace.Span
		ctx, span = f.Tracer.Start(ctx, "userdirectory.fetch", trace.WithAttributes(attribute.String("http.url", endpoint)))
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int("users.count", len(users)))
			}
			span.End()
		}()
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build users request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch users: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
