// Package googletasks implements remote.Source using the Google Tasks API.
package googletasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
	"tasklist/internal/remote"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks requested per API page.
	PageSize = 100

	// APITimeout bounds each API call.
	APITimeout = 10 * time.Second
)

// Client implements remote.Source using the Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored OAuth client and token.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := LoadOAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	token, err := LoadToken(cfg.TokenPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: not logged in (run: tasklist login)", remote.ErrAuth)
		}
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList returns the user's default task list.
func (c *Client) DefaultList(ctx context.Context) (remote.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return remote.TaskList{}, wrapError(err)
	}
	return remote.TaskList{
		ID:        DefaultListID,
		Title:     list.Title,
		IsDefault: true,
	}, nil
}

// ListLists returns all task lists in API order.
func (c *Client) ListLists(ctx context.Context) ([]remote.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	// The default list is only recognizable by its real id.
	defaultList, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	var result []remote.TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			isDefault := list.Id == defaultList.Id
			id := list.Id
			if isDefault {
				id = DefaultListID
			}
			result = append(result, remote.TaskList{
				ID:        id,
				Title:     list.Title,
				IsDefault: isDefault,
			})
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	lists, err := c.ListLists(ctx)
	if err != nil {
		return remote.TaskList{}, err
	}
	return matchList(lists, name)
}

// ListTasks returns every task of a list in API order, following page tokens.
func (c *Client) ListTasks(ctx context.Context, listID string, withCompleted bool) ([]remote.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	call := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(withCompleted).
		ShowHidden(withCompleted).
		ShowDeleted(false)

	var result []remote.Task
	err := call.Pages(ctx, func(resp *tasks.Tasks) error {
		for _, t := range resp.Items {
			result = append(result, remote.Task{
				Title:    t.Title,
				Position: t.Position,
				Status:   t.Status,
			})
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// matchList picks the single list whose trimmed title equals name, ignoring case.
func matchList(lists []remote.TaskList, name string) (remote.TaskList, error) {
	name = strings.TrimSpace(name)

	var matches []remote.TaskList
	for _, list := range lists {
		if strings.EqualFold(strings.TrimSpace(list.Title), name) {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, fmt.Errorf("list %q: %w", name, remote.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, fmt.Errorf("list %q: %w", name, remote.ErrAmbiguous)
	}
}

// wrapError maps API errors onto the remote error kinds.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: token expired or revoked (run: tasklist login)", remote.ErrAuth)
		case http.StatusNotFound:
			return remote.ErrNotFound
		}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %v", remote.ErrAuth, retrieveErr)
	}
	return err
}
