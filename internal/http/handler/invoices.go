package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/apperr"
	"biztime/internal/model"
	"biztime/internal/service"
)

// invoiceID parses the :id path segment. An id that is not a base-10 integer
// cannot name a row, so it is reported the same way as a missing invoice.
func invoiceID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Invoice")
	}
	return id, nil
}

// ListInvoices godoc
// @Summary     List invoices
// @Tags        invoices
// @Produce     json
// @Success     200 {object} invoicesResponse
// @Router      /invoices [get]
func ListInvoices(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invoices, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(invoicesResponse{Invoices: invoices})
	}
}

// GetInvoice godoc
// @Summary     Get an invoice joined with its company
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Invoice id"
// @Success     200 {object} invoiceDetailResponse
// @Failure     404 {object} errorPayload
// @Router      /invoices/{id} [get]
func GetInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}
		invoice, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(invoiceDetailResponse{Invoice: invoice})
	}
}

// CreateInvoice godoc
// @Summary     Create an invoice
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       body body model.InvoiceInput true "comp_code and amt are required"
// @Success     200 {object} invoiceResponse
// @Failure     400 {object} errorPayload
// @Failure     500 {object} errorPayload
// @Router      /invoices [post]
func CreateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.InvoiceInput
		if err := bindBody(c, &in, "comp_code", "amt"); err != nil {
			return err
		}
		invoice, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(invoiceResponse{Invoice: invoice})
	}
}

// UpdateInvoice godoc
// @Summary     Change an invoice amount
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id   path int                true "Invoice id"
// @Param       body body model.InvoiceInput true "amt is required; comp_code is ignored"
// @Success     200 {object} invoiceResponse
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Router      /invoices/{id} [put]
func UpdateInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}
		var in model.InvoiceInput
		if err := bindBody(c, &in, "amt"); err != nil {
			return err
		}
		invoice, err := svc.Update(c.UserContext(), id, in.Amt)
		if err != nil {
			return err
		}
		return c.JSON(invoiceResponse{Invoice: invoice})
	}
}

// DeleteInvoice godoc
// @Summary     Delete an invoice
// @Tags        invoices
// @Produce     json
// @Param       id path int true "Invoice id"
// @Success     200 {object} statusResponse
// @Failure     404 {object} errorPayload
// @Router      /invoices/{id} [delete]
func DeleteInvoice(svc service.InvoiceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := invoiceID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return err
		}
		return c.JSON(deleted)
	}
}
