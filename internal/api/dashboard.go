package api

import (
	"github.com/KaramelBytes/gdpcov-cli/internal/dataset"
	"github.com/KaramelBytes/gdpcov-cli/internal/httpresponse"
	"github.com/KaramelBytes/gdpcov-cli/internal/statistic"
	"github.com/KaramelBytes/gdpcov-cli/internal/views"
	"github.com/gofiber/fiber/v2"
)

// DashboardAPI serves the JSON payload of every view.
type DashboardAPI struct {
	Router fiber.Router
	Table  *dataset.Table
}

// Defaults is the initial selection of every dashboard control.
type Defaults struct {
	Profile          string   `json:"profile"`
	CompareStatistic string   `json:"compareStatistic"`
	CompareEntities  []string `json:"compareEntities"`
	Distribution     string   `json:"distribution"`
	ScatterX         string   `json:"scatterX"`
	ScatterY         string   `json:"scatterY"`
	ScatterFit       bool     `json:"scatterFit"`
	CurrencyQuery    string   `json:"currencyQuery"`
	CurrencyCompareA string   `json:"currencyCompareA"`
	CurrencyCompareB string   `json:"currencyCompareB"`
}

// DefaultsFor resolves the initial selections against t.
func DefaultsFor(t *dataset.Table) Defaults {
	a, b := views.DefaultCurrencyPair(t)
	return Defaults{
		Profile:          views.DefaultProfileEntity(t),
		CompareStatistic: views.DefaultCompareStatistic,
		CompareEntities:  append([]string(nil), views.DefaultCompareEntities...),
		Distribution:     views.DefaultDistributionStatistic,
		ScatterX:         views.DefaultScatterX,
		ScatterY:         views.DefaultScatterY,
		ScatterFit:       views.DefaultScatterFit,
		CurrencyQuery:    views.DefaultCurrencyQuery(t),
		CurrencyCompareA: a,
		CurrencyCompareB: b,
	}
}

func (api *DashboardAPI) Register() {
	api.Router.Get("/countries", func(c *fiber.Ctx) error {
		return httpresponse.ApplySuccessToResponse(c, api.Table.Entities())
	})

	api.Router.Get("/statistics", func(c *fiber.Ctx) error {
		return httpresponse.ApplySuccessToResponse(c, statistic.Labels())
	})

	api.Router.Get("/currencies", func(c *fiber.Ctx) error {
		return httpresponse.ApplySuccessToResponse(c, api.Table.Currencies())
	})

	api.Router.Get("/defaults", func(c *fiber.Ctx) error {
		return httpresponse.ApplySuccessToResponse(c, DefaultsFor(api.Table))
	})

	api.Router.Get("/profile", func(c *fiber.Ctx) error {
		entity := queryOr(c, "entity", views.DefaultProfileEntity(api.Table))
		p, err := views.Profile(api.Table, entity)
		return httpresponse.ApplyResultToResponse(c, p, err)
	})

	api.Router.Get("/compare", func(c *fiber.Ctx) error {
		bc, err := compareSelection(c, api.Table)
		return httpresponse.ApplyResultToResponse(c, bc, err)
	})

	api.Router.Get("/histogram", func(c *fiber.Ctx) error {
		h, err := views.Histogram(api.Table, queryOr(c, "stat", views.DefaultDistributionStatistic))
		return httpresponse.ApplyResultToResponse(c, h, err)
	})

	api.Router.Get("/boxplot", func(c *fiber.Ctx) error {
		bp, err := views.Boxplot(api.Table, queryOr(c, "stat", views.DefaultDistributionStatistic))
		return httpresponse.ApplyResultToResponse(c, bp, err)
	})

	api.Router.Get("/scatter", func(c *fiber.Ctx) error {
		sp, err := scatterSelection(c, api.Table)
		return httpresponse.ApplyResultToResponse(c, sp, err)
	})

	api.Router.Get("/currency", func(c *fiber.Ctx) error {
		code := queryOr(c, "code", views.DefaultCurrencyQuery(api.Table))
		return httpresponse.ApplySuccessToResponse(c, views.CurrencyQuery(api.Table, code))
	})

	api.Router.Get("/currency/compare", func(c *fiber.Ctx) error {
		return httpresponse.ApplySuccessToResponse(c, currencySelection(c, api.Table))
	})
}

func compareSelection(c *fiber.Ctx, t *dataset.Table) (views.BarChart, error) {
	label := queryOr(c, "stat", views.DefaultCompareStatistic)
	entities, ok := queryList(c, "country")
	if !ok {
		entities = views.DefaultCompareEntities
	}
	return views.Compare(t, label, entities)
}

func scatterSelection(c *fiber.Ctx, t *dataset.Table) (views.ScatterPlot, error) {
	x := queryOr(c, "x", views.DefaultScatterX)
	y := queryOr(c, "y", views.DefaultScatterY)
	return views.Scatter(t, x, y, c.QueryBool("fit", views.DefaultScatterFit))
}

func currencySelection(c *fiber.Ctx, t *dataset.Table) views.CurrencyComparison {
	defA, defB := views.DefaultCurrencyPair(t)
	return views.CurrencyCompare(t, queryOr(c, "a", defA), queryOr(c, "b", defB))
}
