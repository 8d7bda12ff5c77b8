package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// queryList returns every value of a repeated query parameter. The boolean
// reports whether the parameter was present at all, so an explicit empty
// selection can be told apart from no selection.
func queryList(c *fiber.Ctx, key string) ([]string, bool) {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil, false
	}
	raw := args.PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, b := range raw {
		for _, s := range strings.Split(string(b), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out, true
}

func queryOr(c *fiber.Ctx, key, def string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return def
}
