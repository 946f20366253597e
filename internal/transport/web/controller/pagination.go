package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
	defaultLimit    = 20
)

// Bool string constants for query parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("invalid page size value [%d]", ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

// parseLimit reads the optional "limit" parameter, defaulting to defaultLimit.
func parseLimit(q url.Values) (int, error) {
	if !q.Has("limit") {
		return defaultLimit, nil
	}
	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 || limit > maxPageSize {
		return 0, fmt.Errorf("limit [%d] outside 1..%d", limit, maxPageSize)
	}
	return int(limit), nil
}

func parseOptionalInt(q url.Values, name string) (*int, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseInt(q.Get(name), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s from query: %w", name, err)
	}
	i := int(v)
	return &i, nil
}

// splitList splits a comma separated parameter, dropping empty entries.
func splitList(q url.Values, name string) []string {
	if !q.Has(name) {
		return nil
	}
	var out []string
	for _, s := range strings.Split(q.Get(name), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
