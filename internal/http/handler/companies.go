package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/apperr"
	"biztime/internal/model"
	"biztime/internal/service"
)

// companyCode returns the :code path segment percent-decoded, so a code such as
// "A B" is looked up as stored rather than as "A%20B". A malformed escape cannot
// name a row.
func companyCode(c *fiber.Ctx) (string, error) {
	code, err := url.PathUnescape(c.Params("code"))
	if err != nil {
		return "", apperr.NotFound("Company")
	}
	return code, nil
}

// ListCompanies godoc
// @Summary     List companies
// @Tags        companies
// @Produce     json
// @Success     200 {object} companiesResponse
// @Failure     500 {object} errorPayload
// @Router      /companies [get]
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companies, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(companiesResponse{Companies: companies})
	}
}

// GetCompany godoc
// @Summary     Get a company with its invoice ids
// @Tags        companies
// @Produce     json
// @Param       code path string true "Company code"
// @Success     200 {object} companyDetailResponse
// @Failure     404 {object} errorPayload
// @Router      /companies/{code} [get]
func GetCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code, err := companyCode(c)
		if err != nil {
			return err
		}
		company, err := svc.Get(c.UserContext(), code)
		if err != nil {
			return err
		}
		return c.JSON(companyDetailResponse{Company: company})
	}
}

// CreateCompany godoc
// @Summary     Create a company
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       body body model.CompanyInput true "code and name are required"
// @Success     200 {object} companyResponse
// @Failure     400 {object} errorPayload
// @Failure     500 {object} errorPayload
// @Router      /companies [post]
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CompanyInput
		if err := bindBody(c, &in, "code", "name"); err != nil {
			return err
		}
		company, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(companyResponse{Company: company})
	}
}

// UpdateCompany godoc
// @Summary     Replace a company's name and description
// @Description An omitted description is stored as null.
// @Tags        companies
// @Accept      json
// @Produce     json
// @Param       code path string true "Company code"
// @Param       body body model.CompanyInput true "name is required"
// @Success     200 {object} companyResponse
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Router      /companies/{code} [put]
func UpdateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code, err := companyCode(c)
		if err != nil {
			return err
		}
		var in model.CompanyInput
		if err := bindBody(c, &in, "name"); err != nil {
			return err
		}
		company, err := svc.Update(c.UserContext(), code, in)
		if err != nil {
			return err
		}
		return c.JSON(companyResponse{Company: company})
	}
}

// DeleteCompany godoc
// @Summary     Delete a company and its invoices
// @Tags        companies
// @Produce     json
// @Param       code path string true "Company code"
// @Success     200 {object} statusResponse
// @Failure     404 {object} errorPayload
// @Router      /companies/{code} [delete]
func DeleteCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code, err := companyCode(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), code); err != nil {
			return err
		}
		return c.JSON(deleted)
	}
}
