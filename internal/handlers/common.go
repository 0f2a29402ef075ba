// common.go
//
// Star Wars favorites REST data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of starwars-favorites.
// starwars-favorites is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// starwars-favorites is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with starwars-favorites.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/services"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/types"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// serializer is implemented by every model with a JSON projection
type serializer interface {
	Serialize() map[string]interface{}
}

// serializeAll maps rows through their projection, never returning nil
func serializeAll[T serializer](rows []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Serialize())
	}
	return out
}

// pathID parses an integer path segment. A segment that is not a
// non-negative integer does not address any row.
func pathID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 0)
	if err != nil {
		return 0, types.NewAPIError("Resource Not Found", fiber.StatusNotFound)
	}
	return uint(id), nil
}

// storeError turns a store failure into a response. Duplicate associations
// are reported as 404 for compatibility with existing clients. Anything else
// is left to the global error handler.
func storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrDuplicate) {
		return utils.NotFoundResponse(c, err.Error())
	}
	return err
}

// present reports whether every required body field was supplied
func present(fields ...*string) bool {
	for _, f := range fields {
		if f == nil {
			return false
		}
	}
	return true
}

// Sitemap lists the endpoints registered on the app
func Sitemap(app *fiber.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		seen := make(map[string]struct{})
		var links []string
		for _, route := range app.GetRoutes(true) {
			switch route.Method {
			case fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete:
			default:
				continue
			}
			if route.Path == "/" || strings.Contains(route.Path, "*") {
				continue
			}
			key := route.Method + " " + route.Path
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			links = append(links, key)
		}
		sort.Strings(links)

		var b strings.Builder
		b.WriteString("<div style=\"text-align: center;\"><h1>Star Wars API</h1><ul style=\"text-align: left;\">")
		for _, link := range links {
			method, path, _ := strings.Cut(link, " ")
			if method == fiber.MethodGet && !strings.Contains(path, ":") {
				fmt.Fprintf(&b, "<li>%s <a href=\"%s\">%s</a></li>", method, html.EscapeString(path), html.EscapeString(path))
			} else {
				fmt.Fprintf(&b, "<li>%s %s</li>", method, html.EscapeString(path))
			}
		}
		b.WriteString("</ul></div>")

		c.Type("html")
		return c.Status(fiber.StatusOK).SendString(b.String())
	}
}
