// Package server wires the dashboard routes into a fiber application.
package server

import (
	"html/template"
	"time"

	"github.com/KaramelBytes/gdpcov-cli/internal/api"
	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

// Options configures a Server.
type Options struct {
	ChartSize render.Size
}

// Server holds the fiber app bound to one loaded dataset.
type Server struct {
	app   *fiber.App
	table *dataset.Table
}

// New builds the app and registers every route. The table is shared
// read-only by all handlers.
func New(t *dataset.Table, opt Options) *Server {
	if opt.ChartSize.Width <= 0 || opt.ChartSize.Height <= 0 {
		opt.ChartSize = render.DefaultSize()
	}
	app := fiber.New(fiber.Config{
		AppName:               "gdpcov",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})
	app.Use(requestID)
	// A panicking view answers 500 instead of taking the dashboard down.
	app.Use(recover.New())

	s := &Server{app: app, table: t}
	app.Get("/", s.index)

	dashboardAPI := &api.DashboardAPI{Router: app.Group("/api"), Table: t}
	dashboardAPI.Register()

	chartAPI := &api.ChartAPI{Router: app.Group("/chart"), Table: t, Size: opt.ChartSize}
	chartAPI.Register()

	return s
}

// App exposes the underlying fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on addr.
func (s *Server) Listen(addr string) error {
	log.Infof("dashboard listening on http://%s (%d records from %s)", addr, s.table.Len(), s.table.Source())
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requestID(c *fiber.Ctx) error {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(fiber.HeaderXRequestID, id)
	c.Locals("requestid", id)
	start := time.Now()
	err := c.Next()
	log.Infof("%s %s %s %d %s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start).Round(time.Microsecond))
	return err
}

type indexData struct {
	Source     string
	Records    int
	Countries  []string
	Statistics []string
	Currencies []string
	Defaults   api.Defaults
}

func (s *Server) index(c *fiber.Ctx) error {
	data := indexData{
		Source:     s.table.Source(),
		Records:    s.table.Len(),
		Countries:  s.table.Entities(),
		Statistics: statistic.Labels(),
		Currencies: s.table.Currencies(),
		Defaults:   api.DefaultsFor(s.table),
	}
	c.Type("html", "utf-8")
	return indexTemplate.Execute(c, data)
}

var indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	"selected": func(have string, want any) bool {
		switch w := want.(type) {
		case string:
			return w == have
		case []string:
			for _, x := range w {
				if x == have {
					return true
				}
			}
		}
		return false
	},
}).Parse(indexHTML))
