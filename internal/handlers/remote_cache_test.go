package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/services"
)

func TestCachedRemoteContent(t *testing.T) {
	t.Parallel()

	calls := map[string]int{}
	remote := RemoteContentFunc(func(_ context.Context, req services.ResolveRequest) (domain.ContentPage, bool, error) {
		calls[req.Path]++
		switch req.Path {
		case "campaigns/spring":
			return domain.ContentPage{ID: "remote-spring", Layout: []domain.Block{{BlockType: "hero"}}}, true, nil
		case "campaigns/broken":
			return domain.ContentPage{}, false, errors.New("timeout")
		}
		return domain.ContentPage{}, false, nil
	})
	cached := NewCachedRemoteContent(remote, 8, time.Minute)
	ctx := context.Background()

	page, ok, err := cached.FetchPage(ctx, services.ResolveRequest{Path: "campaigns/spring", TenantID: testTenant})
	require.NoError(t, err)
	require.True(t, ok)
	page.Layout[0].BlockType = "mutated"

	page, ok, err = cached.FetchPage(ctx, services.ResolveRequest{Path: "/campaigns/spring/", TenantID: testTenant})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hero", page.Layout[0].BlockType)
	require.Equal(t, 1, calls["campaigns/spring"])

	_, _, err = cached.FetchPage(ctx, services.ResolveRequest{Path: "campaigns/spring", TenantID: "tenant-b"})
	require.NoError(t, err)
	require.Equal(t, 2, calls["campaigns/spring"], "tenants do not share entries")

	for i := 0; i < 2; i++ {
		_, ok, err = cached.FetchPage(ctx, services.ResolveRequest{Path: "missing", TenantID: testTenant})
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 1, calls["missing"])

	for i := 0; i < 2; i++ {
		_, _, err = cached.FetchPage(ctx, services.ResolveRequest{Path: "campaigns/broken", TenantID: testTenant})
		require.Error(t, err)
	}
	require.Equal(t, 2, calls["campaigns/broken"])
}

func TestNewCachedRemoteContentDisabled(t *testing.T) {
	t.Parallel()

	remote := RemoteContentFunc(func(context.Context, services.ResolveRequest) (domain.ContentPage, bool, error) {
		return domain.ContentPage{}, false, nil
	})
	_, isCache := NewCachedRemoteContent(remote, 0, time.Minute).(*cachedRemoteContent)
	require.False(t, isCache)
	_, isCache = NewCachedRemoteContent(remote, 8, 0).(*cachedRemoteContent)
	require.False(t, isCache)
	require.Nil(t, NewCachedRemoteContent(nil, 8, time.Minute))
}
