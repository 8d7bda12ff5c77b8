package api

import (
	"bytes"
	"io"

	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/httpresponse"
	"github.com/KaramelBytes/gdpcov-cli/internal/render"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/gofiber/fiber/v2"
)

// ChartAPI serves the PNG rendering of every chart view.
type ChartAPI struct {
	Router fiber.Router
	Table  *dataset.Table
	Size   render.Size
}

func (api *ChartAPI) Register() {
	api.Router.Get("/compare.png", func(c *fiber.Ctx) error {
		bc, err := compareSelection(c, api.Table)
		return api.png(c, err, func(w io.Writer) error { return render.BarChart(w, bc, api.Size) })
	})

	api.Router.Get("/histogram.png", func(c *fiber.Ctx) error {
		h, err := views.Histogram(api.Table, queryOr(c, "stat", views.DefaultDistributionStatistic))
		return api.png(c, err, func(w io.Writer) error { return render.Histogram(w, h, api.Size) })
	})

	api.Router.Get("/boxplot.png", func(c *fiber.Ctx) error {
		bp, err := views.Boxplot(api.Table, queryOr(c, "stat", views.DefaultDistributionStatistic))
		return api.png(c, err, func(w io.Writer) error { return render.Boxplot(w, bp, api.Size) })
	})

	api.Router.Get("/scatter.png", func(c *fiber.Ctx) error {
		sp, err := scatterSelection(c, api.Table)
		return api.png(c, err, func(w io.Writer) error { return render.Scatter(w, sp, api.Size) })
	})

	api.Router.Get("/currency.png", func(c *fiber.Ctx) error {
		cc := currencySelection(c, api.Table)
		return api.png(c, nil, func(w io.Writer) error { return render.CurrencyPanels(w, cc, api.Size) })
	})
}

func (api *ChartAPI) png(c *fiber.Ctx, viewErr error, draw func(io.Writer) error) error {
	if viewErr != nil {
		return httpresponse.ApplyResultToResponse(c, nil, viewErr)
	}
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		return httpresponse.ApplyErrorToResponse(c, "Chart rendering failed", err)
	}
	c.Type("png")
	return c.Send(buf.Bytes())
}

