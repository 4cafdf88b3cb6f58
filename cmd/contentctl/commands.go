package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domain "github.com/hanko-field/storefront-content/internal/domain"
	"github.com/hanko-field/storefront-content/internal/filter"
	"github.com/hanko-field/storefront-content/internal/platform/config"
	"github.com/hanko-field/storefront-content/internal/platform/pagination"
	"github.com/hanko-field/storefront-content/internal/platform/requestctx"
	"github.com/hanko-field/storefront-content/internal/registry"
	"github.com/hanko-field/storefront-content/internal/services"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var errNotFound = errors.New("not found")

// cli carries state shared by every subcommand once the root pre-run has finished.
type cli struct {
	out        io.Writer
	configOpts []config.Option

	tenant  string
	output  string
	verbose bool

	cfg        config.Config
	registry   *registry.Registry
	pages      services.PageService
	navigation services.NavigationService
	logger     *zap.Logger
}

func newRootCommand(out io.Writer, configOpts ...config.Option) *cobra.Command {
	app := &cli{out: out, configOpts: configOpts}

	root := &cobra.Command{
		Use:          "contentctl",
		Short:        "Inspect the storefront content registry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&app.tenant, "tenant", "", "tenant id (defaults to CONTENT_DEFAULT_TENANT)")
	root.PersistentFlags().StringVarP(&app.output, "output", "o", outputJSON, "output format: json or yaml")
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log resolution details to stderr")

	root.AddCommand(
		app.resolveCommand(),
		app.queryCommand(),
		app.navigationCommand(),
		app.verticalsCommand(),
	)
	return root
}

func (c *cli) setup() error {
	switch c.output {
	case outputJSON, outputYAML:
	default:
		return fmt.Errorf("unsupported output %q: use json or yaml", c.output)
	}

	cfg, err := config.Load(c.configOpts...)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if strings.TrimSpace(c.tenant) == "" {
		c.tenant = cfg.Content.DefaultTenant
	}

	c.logger = zap.NewNop()
	if c.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		c.logger = logger
	}

	// The registry belongs to the configured tenant; --tenant only selects the lookup tenant.
	c.registry = registry.ForTenant(cfg.Content.DefaultTenant)

	c.pages, err = services.NewPageService(services.PageServiceDeps{Registry: c.registry, Logger: c.logger})
	if err != nil {
		return err
	}
	c.navigation, err = services.NewNavigationService(services.NavigationServiceDeps{Registry: c.registry})
	return err
}

func (c *cli) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return requestctx.WithLogger(ctx, c.logger)
}

func (c *cli) resolveCommand() *cobra.Command {
	var locale, country string
	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Resolve the best page for a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if locale == "" {
				locale = c.cfg.Content.DefaultLocale
			}
			page, ok := c.pages.ResolvePage(c.requestContext(cmd), services.ResolveRequest{
				Path:        path,
				TenantID:    c.tenant,
				Locale:      locale,
				CountryCode: country,
			})
			if !ok {
				return fmt.Errorf("page %q: %w", path, errNotFound)
			}
			return c.write(page)
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "request locale")
	cmd.Flags().StringVar(&country, "country", "", "visitor country code")
	return cmd
}

func (c *cli) queryCommand() *cobra.Command {
	var where, sort string
	var limit, page int
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and paginate registry pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := url.Values{}
			values.Set("where", where)
			values.Set("sort", sort)
			if limit != 0 {
				values.Set("limit", strconv.Itoa(limit))
			}
			if page != 0 {
				values.Set("page", strconv.Itoa(page))
			}
			params, err := pagination.Parse(values, pagination.Options{
				DefaultLimit:      c.cfg.Content.QueryDefaultLimit,
				MaxLimit:          c.cfg.Content.QueryMaxLimit,
				AllowedSortFields: filter.Fields(),
			})
			if err != nil {
				return err
			}
			result := c.pages.QueryPages(c.requestContext(cmd), services.PageQuery{
				Where: params.Where,
				Limit: params.Limit,
				Page:  params.Page,
				Sort:  params.Sort,
			})
			return c.write(result)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "JSON where clause")
	cmd.Flags().StringVar(&sort, "sort", "", "sort field, prefix with - for descending")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number")
	return cmd
}

func (c *cli) navigationCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "nav <location>",
		Short:     "Print the navigation tree for a location",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.LocationHeader), string(domain.LocationFooter), string(domain.LocationSidebar), string(domain.LocationMobile)},
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := c.navigation.GetNavigation(c.requestContext(cmd), c.tenant, domain.NavigationLocation(args[0]))
			if !ok {
				return fmt.Errorf("navigation %q: %w", args[0], errNotFound)
			}
			return c.write(entry)
		},
	}
}

func (c *cli) verticalsCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "verticals",
		Short: "List vertical definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := registry.Verticals()
			if category != "" {
				filtered := defs[:0]
				for _, v := range defs {
					if strings.EqualFold(string(v.Category), category) {
						filtered = append(filtered, v)
					}
				}
				defs = filtered
			}
			return c.write(defs)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list verticals in this category")
	return cmd
}

func (c *cli) write(value any) error {
	if c.output == outputYAML {
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
