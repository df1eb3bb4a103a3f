package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/cache"
	"github.com/iudanet/shelfsync/internal/feedsync"
	"github.com/iudanet/shelfsync/internal/identity"
	"github.com/iudanet/shelfsync/internal/iocli"
	"github.com/iudanet/shelfsync/internal/models"
	"github.com/iudanet/shelfsync/internal/remote"
)

// captureIO собирает весь вывод команды в буфер
type captureIO struct {
	*iocli.IOMock
	out strings.Builder
}

func newCaptureIO() *captureIO {
	c := &captureIO{}
	c.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&c.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", nil
		},
		WriteFunc: func(p []byte) (int, error) {
			c.out.Write(p)
			return len(p), nil
		},
	}
	return c
}

type fakeSub struct{}

func (fakeSub) Unsubscribe() {}

func newTestCli(t *testing.T, who *identity.Identity, items []models.ContentItem) (*Cli, *captureIO) {
	t.Helper()

	store := &remote.StoreMock{
		SchemaVersionFunc: func(ctx context.Context) (string, error) { return "v1", nil },
		FetchItemsFunc: func(ctx context.Context, query remote.Query) ([]models.ContentItem, error) {
			if query.StartAfter != "" {
				return nil, nil
			}
			return items, nil
		},
		SubscribeFunc: func(ctx context.Context, query remote.Query, onBatch func([]models.Delta), onError func(error)) (remote.Subscription, error) {
			return fakeSub{}, nil
		},
	}
	storage := &cache.StorageMock{
		GetAllItemsFunc:      func(ctx context.Context) ([]models.ContentItem, error) { return nil, nil },
		PutItemsFunc:         func(ctx context.Context, items []models.ContentItem) error { return nil },
		GetSchemaVersionFunc: func(ctx context.Context) (string, error) { return "v1", nil },
		SetSchemaVersionFunc: func(ctx context.Context, version string) error { return nil },
		GetLastSeenFunc:      func(ctx context.Context) (time.Time, error) { return time.Time{}, nil },
		SetLastSeenFunc:      func(ctx context.Context, ts time.Time) error { return nil },
		GetFilterSetFunc: func(ctx context.Context, fingerprint string) (*cache.FilterSet, error) {
			return nil, cache.ErrFilterSetNotFound
		},
		PutFilterSetFunc: func(ctx context.Context, fingerprint string, items []models.ContentItem, fetchedAt time.Time) error {
			return nil
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := feedsync.NewService(who, store, storage, logger)

	io := newCaptureIO()
	return New(svc, who, io), io
}

func displayItem(id, description string, likes ...string) models.ContentItem {
	displayed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	item := models.ContentItem{
		ID:          id,
		Description: description,
		DisplayedAt: &displayed,
		CreatedAt:   displayed,
		Likes:       likes,
	}
	item.Normalize()
	return item
}

func TestCli_RunSync(t *testing.T) {
	who := &identity.Identity{UserID: "user-1", CompanyID: "acme", Role: identity.RoleMember}
	cli, io := newTestCli(t, who, []models.ContentItem{
		displayItem("a", "endcap display", "user-1"),
		displayItem("b", "window display"),
	})

	require.NoError(t, cli.runSync(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "endcap display")
	assert.Contains(t, out, "window display")
	assert.Contains(t, out, "(including yours)")
	assert.Contains(t, out, "Showing 2 item(s)")
}

func TestCli_RunSync_EmptyFeed(t *testing.T) {
	who := &identity.Identity{Role: identity.RoleAnonymous}
	cli, io := newTestCli(t, who, nil)

	require.NoError(t, cli.runSync(context.Background()))
	assert.Contains(t, io.out.String(), "The feed is empty.")
}

func TestCli_RunFilter(t *testing.T) {
	who := &identity.Identity{UserID: "user-1", CompanyID: "acme", Role: identity.RoleMember}
	cli, io := newTestCli(t, who, []models.ContentItem{
		displayItem("hit", "matching display"),
	})

	require.NoError(t, cli.runFilter(context.Background(), []string{"brand=sparkle-cola"}))

	out := io.out.String()
	assert.Contains(t, out, "matching display")
	assert.Contains(t, out, "Showing 1 item(s) matching the filter")
}

func TestCli_RunFilter_NoArgs(t *testing.T) {
	who := &identity.Identity{Role: identity.RoleAnonymous}
	cli, _ := newTestCli(t, who, nil)

	err := cli.runFilter(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing filter")
}

func TestCli_RunLike(t *testing.T) {
	who := &identity.Identity{UserID: "user-1", CompanyID: "acme", Role: identity.RoleMember}
	cli, io := newTestCli(t, who, []models.ContentItem{
		displayItem("a", "endcap display"),
	})

	require.NoError(t, cli.runLike(context.Background(), []string{"a"}))
	assert.Contains(t, io.out.String(), "Liked a")
}

func TestCli_RunLike_Anonymous(t *testing.T) {
	who := &identity.Identity{Role: identity.RoleAnonymous}
	cli, _ := newTestCli(t, who, nil)

	err := cli.runLike(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
}

func TestCli_RunStatus(t *testing.T) {
	who := &identity.Identity{UserID: "user-1", CompanyID: "acme", Role: identity.RoleMember}
	cli, io := newTestCli(t, who, []models.ContentItem{
		displayItem("a", "endcap display"),
	})

	require.NoError(t, cli.runStatus(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "Identity: user-1")
	assert.Contains(t, out, "Feed items:     1")
	assert.Contains(t, out, "Listener state: active")
}
