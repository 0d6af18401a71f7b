package server

import (
	"net/url"
	"unicode/utf8"

	"countries-api/core/query"

	"github.com/gofiber/fiber/v2"
)

// Query parameters shared by the listing endpoints.
const (
	ParamFields  = "fields"
	ParamSort    = "sort"
	ParamFlatten = "flatten"
)

// QueryOptions reads fields, sort and flatten from the query string.
// flatten accepts only "true" or "false"; anything else is a 400.
func QueryOptions(c *fiber.Ctx) (query.Options, error) {
	var flatten bool
	switch raw := c.Query(ParamFlatten); raw {
	case "", "false":
	case "true":
		flatten = true
	default:
		return query.Options{}, NewError(fiber.StatusBadRequest, KeyInvalidParameter, ParamFlatten)
	}

	return query.ParseOptions(c.Query(ParamFields), c.Query(ParamSort), flatten), nil
}

// PathParam returns the decoded route parameter key, rejecting empty values
// and values longer than maxLen characters with a 400.
func PathParam(c *fiber.Ctx, key string, maxLen int) (string, error) {
	raw := c.Params(key)
	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}
	if value == "" || utf8.RuneCountInString(value) > maxLen {
		return "", NewError(fiber.StatusBadRequest, KeyInvalidParameter, key)
	}
	return value, nil
}
