package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/platform/config"
	"github.com/hanko-field/storefront-content/internal/platform/pagination"
	"github.com/hanko-field/storefront-content/internal/registry"
)

const testTenant = "tenant-a"

func run(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCommand(out,
		config.WithEnvFile(""),
		config.WithoutSystemEnv(),
		config.WithEnvMap(map[string]string{"CONTENT_DEFAULT_TENANT": testTenant}),
	)
	cmd.SetArgs(args)
	return out, cmd.Execute()
}

func TestVerticalsCommand(t *testing.T) {
	out, err := run(t, "verticals")
	require.NoError(t, err)

	var defs []domain.VerticalDefinition
	require.NoError(t, json.Unmarshal(out.Bytes(), &defs))
	require.Len(t, defs, len(registry.Verticals()))
	require.Equal(t, "restaurants", defs[0].Slug)

	out, err = run(t, "verticals", "--category", "services")
	require.NoError(t, err)
	defs = nil
	require.NoError(t, json.Unmarshal(out.Bytes(), &defs))
	require.NotEmpty(t, defs)
	for _, v := range defs {
		require.Equal(t, domain.CategoryServices, v.Category)
	}
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "restaurants/best-pizza", "--output", "yaml")
	require.NoError(t, err)

	var page domain.ContentPage
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &page))
	require.Equal(t, "restaurants-detail-best-pizza", page.ID)
	require.Equal(t, testTenant, page.Tenant)

	out, err = run(t, "resolve", "store", "--country", "SA")
	require.NoError(t, err)
	page = domain.ContentPage{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Equal(t, "page-store-sa", page.ID)

	out, err = run(t, "resolve")
	require.NoError(t, err)
	page = domain.ContentPage{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Equal(t, "page-home", page.ID)

	_, err = run(t, "resolve", "nonexistent-page")
	require.True(t, errors.Is(err, errNotFound))

	_, err = run(t, "resolve", "store", "--tenant", "someone-else")
	require.True(t, errors.Is(err, errNotFound))

	out, err = run(t, "resolve", "restaurants", "--tenant", testTenant)
	require.NoError(t, err)
	page = domain.ContentPage{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Equal(t, "restaurants-list", page.ID)

	_, err = run(t, "resolve", "restaurants", "--tenant", "wrong-tenant")
	require.True(t, errors.Is(err, errNotFound))
}

func TestQueryCommand(t *testing.T) {
	out, err := run(t, "query", "--where", `{"template":"vertical-list"}`, "--limit", "4", "--sort", "-title")
	require.NoError(t, err)

	var result domain.PaginatedDocs[domain.ContentPage]
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Equal(t, len(registry.Verticals()), result.TotalDocs)
	require.Len(t, result.Docs, 4)
	require.True(t, result.HasNextPage)
	for i := 1; i < len(result.Docs); i++ {
		require.GreaterOrEqual(t, result.Docs[i-1].Title, result.Docs[i].Title)
	}

	_, err = run(t, "query", "--where", "{")
	require.True(t, errors.Is(err, pagination.ErrInvalidWhere))

	_, err = run(t, "query", "--sort", "price")
	require.True(t, errors.Is(err, pagination.ErrInvalidSort))
}

func TestNavigationCommand(t *testing.T) {
	out, err := run(t, "nav", "footer")
	require.NoError(t, err)

	var entry domain.NavigationEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	require.Equal(t, domain.LocationFooter, entry.Location)
	require.Equal(t, testTenant, entry.Tenant)

	_, err = run(t, "nav", "sidebar")
	require.True(t, errors.Is(err, errNotFound))

	_, err = run(t, "nav", "footer", "--tenant", "wrong-tenant")
	require.True(t, errors.Is(err, errNotFound))
}

func TestRootRejectsUnknownOutput(t *testing.T) {
	_, err := run(t, "verticals", "--output", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported output")
}
