package prettyjson

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QueryParam switches indentation on when present in the query string.
const QueryParam = "pretty"

// New returns a middleware that indents JSON response bodies when the request
// carries ?pretty. Other responses pass through untouched.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if !c.Context().QueryArgs().Has(QueryParam) {
			return nil
		}
		if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
			return nil
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, c.Response().Body(), "", "  "); err != nil {
			return nil
		}
		c.Response().SetBodyRaw(buf.Bytes())
		return nil
	}
}
