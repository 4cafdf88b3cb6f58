package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hanko-field/storefront-content/internal/filter"
)

const (
	// DefaultLimit is the number of pages returned when the client omits limit.
	DefaultLimit = 10
	// DefaultMaxLimit caps limit to keep responses bounded.
	DefaultMaxLimit = 100

	maxWhereLength = 4096
)

// Params bundles the offset pagination, ordering and filter values of a request.
type Params struct {
	Limit int
	Page  int
	Sort  string
	Where *filter.Where
}

// Options control how Parse validates a request for a given handler.
type Options struct {
	DefaultLimit      int
	MaxLimit          int
	AllowedSortFields []string
}

var (
	ErrInvalidLimit = errors.New("pagination: invalid limit")
	ErrInvalidPage  = errors.New("pagination: invalid page")
	ErrInvalidSort  = errors.New("pagination: invalid sort")
	ErrInvalidWhere = errors.New("pagination: invalid where")
)

// FromRequest parses the supported query parameters from the supplied request.
func FromRequest(r *http.Request, opts Options) (Params, error) {
	if r == nil {
		return Params{}, errors.New("pagination: nil request")
	}
	return Parse(r.URL.Query(), opts)
}

// Parse validates limit, page, sort and where. A missing where leaves Params.Where nil
// so callers can skip filtering entirely.
func Parse(values url.Values, opts Options) (Params, error) {
	if values == nil {
		values = url.Values{}
	}

	limit, err := parseLimit(values.Get("limit"), opts)
	if err != nil {
		return Params{}, err
	}
	page, err := parsePage(values.Get("page"))
	if err != nil {
		return Params{}, err
	}
	sort, err := parseSort(values.Get("sort"), opts.AllowedSortFields)
	if err != nil {
		return Params{}, err
	}
	where, err := parseWhere(values.Get("where"))
	if err != nil {
		return Params{}, err
	}

	return Params{Limit: limit, Page: page, Sort: sort, Where: where}, nil
}

func parseLimit(raw string, opts Options) (int, error) {
	maxLimit := opts.MaxLimit
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	defaultLimit := opts.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: must be an integer", ErrInvalidLimit)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidLimit)
	}
	if value > maxLimit {
		value = maxLimit
	}
	return value, nil
}

func parsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: must be an integer", ErrInvalidPage)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidPage)
	}
	return value, nil
}

func parseSort(raw string, allowed []string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	field := strings.TrimPrefix(raw, "-")
	if !isAllowedFieldName(field) {
		return "", fmt.Errorf("%w: invalid field %q", ErrInvalidSort, field)
	}
	if len(allowed) > 0 {
		permitted := false
		for _, candidate := range allowed {
			if candidate == field {
				permitted = true
				break
			}
		}
		if !permitted {
			return "", fmt.Errorf("%w: field %q is not allowed", ErrInvalidSort, field)
		}
	}
	return raw, nil
}

func parseWhere(raw string) (*filter.Where, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if len(raw) > maxWhereLength {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrInvalidWhere, maxWhereLength)
	}
	where, err := filter.ParseJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWhere, err)
	}
	return &where, nil
}

func isAllowedFieldName(field string) bool {
	if field == "" {
		return false
	}
	for _, r := range field {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
