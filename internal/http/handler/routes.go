package handler

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"biztime/docs"
	"biztime/internal/service"
)

// Services bundles the use cases the routes dispatch to.
type Services struct {
	Companies service.CompanyService
	Invoices  service.InvoiceService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. The catch-all
// is registered last, so it must be called after any other route registration.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	app.Get("/companies", ListCompanies(svc.Companies))
	app.Get("/companies/:code", GetCompany(svc.Companies))
	app.Post("/companies", CreateCompany(svc.Companies))
	app.Put("/companies/:code", UpdateCompany(svc.Companies))
	app.Delete("/companies/:code", DeleteCompany(svc.Companies))

	app.Get("/invoices", ListInvoices(svc.Invoices))
	app.Get("/invoices/:id", GetInvoice(svc.Invoices))
	app.Post("/invoices", CreateInvoice(svc.Invoices))
	app.Put("/invoices/:id", UpdateInvoice(svc.Invoices))
	app.Delete("/invoices/:id", DeleteInvoice(svc.Invoices))

	app.Use(NotFound())
}
