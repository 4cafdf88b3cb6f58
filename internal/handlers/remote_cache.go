package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/services"
)

type remoteResult struct {
	page  domain.ContentPage
	found bool
}

// cachedRemoteContent memoizes remote lookups, including misses. Errors are not cached.
type cachedRemoteContent struct {
	next  RemoteContent
	cache *expirable.LRU[string, remoteResult]
}

// NewCachedRemoteContent wraps remote with an LRU whose entries expire after ttl.
// A non-positive size or ttl returns remote unchanged.
func NewCachedRemoteContent(remote RemoteContent, size int, ttl time.Duration) RemoteContent {
	if remote == nil || size <= 0 || ttl <= 0 {
		return remote
	}
	return &cachedRemoteContent{
		next:  remote,
		cache: expirable.NewLRU[string, remoteResult](size, nil, ttl),
	}
}

func (c *cachedRemoteContent) FetchPage(ctx context.Context, req services.ResolveRequest) (domain.ContentPage, bool, error) {
	key := remoteCacheKey(req)
	if cached, ok := c.cache.Get(key); ok {
		return cached.page.Clone(), cached.found, nil
	}
	page, found, err := c.next.FetchPage(ctx, req)
	if err != nil {
		return domain.ContentPage{}, false, err
	}
	c.cache.Add(key, remoteResult{page: page.Clone(), found: found})
	return page, found, nil
}

func remoteCacheKey(req services.ResolveRequest) string {
	return strings.Join([]string{
		req.TenantID,
		req.Locale,
		strings.ToUpper(req.CountryCode),
		strings.Trim(req.Path, "/"),
	}, "\x00")
}
