package validation

import (
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	createInvoiceMessage = "Missing Fields. Failed to Create Invoice."
	updateInvoiceMessage = "Missing Fields. Failed to Update Invoice."

	amountMessage = "Please enter an amount greater than $0."
)

var maxAmountMessage = "Please enter an amount no greater than " + money.FormatCurrency(money.MaxMinorUnits) + "."

// InvoiceInput carries the amount in dollars; conversion to cents happens
// when the invoice is persisted.
type InvoiceInput struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Status     string
}

type InvoiceUpdate struct {
	ID uuid.UUID
	InvoiceInput
}

var (
	customerRules = []rule{
		{tag: "required", message: "Please select a customer."},
		{tag: "omitempty,uuid", message: "Please select a valid customer."},
	}
	statusRules = []rule{
		{tag: "oneof=" + models.InvoiceStatusPending + " " + models.InvoiceStatusPaid, message: "Please select an invoice status."},
	}
)

func ValidateCreateInvoice(form Form) (InvoiceInput, *Failure) {
	c := newChecker()
	in := invoiceFields(c, form)
	if f := c.failed(createInvoiceMessage); f != nil {
		return InvoiceInput{}, f
	}
	return in, nil
}

func ValidateUpdateInvoice(id string, form Form) (InvoiceUpdate, *Failure) {
	c := newChecker()
	up := InvoiceUpdate{ID: parseID(c, id)}
	up.InvoiceInput = invoiceFields(c, form)
	if f := c.failed(updateInvoiceMessage); f != nil {
		return InvoiceUpdate{}, f
	}
	return up, nil
}

func invoiceFields(c *checker, form Form) InvoiceInput {
	var in InvoiceInput

	rawCustomer := field(form, "customerId", "customer_id")
	c.check("customerId", rawCustomer, customerRules...)
	if !c.Has("customerId") {
		in.CustomerID, _ = uuid.Parse(rawCustomer)
	}

	in.Amount = amountField(c, field(form, "amount"))

	in.Status = field(form, "status")
	c.check("status", in.Status, statusRules...)

	return in
}

// amountField coerces like a form number input: blank is zero.
func amountField(c *checker, raw string) decimal.Decimal {
	if raw == "" {
		raw = "0"
	}
	amount, err := money.ParseMajor(raw)
	if err != nil {
		c.add("amount", "Please enter a valid amount.")
		return decimal.Zero
	}
	c.check("amount", amount.InexactFloat64(), rule{tag: "gt=0", message: amountMessage})
	if c.Has("amount") {
		return amount
	}
	if !money.FitsMinorUnits(amount) {
		c.add("amount", maxAmountMessage)
		return amount
	}
	if money.ToMinorUnits(amount) < 1 {
		c.add("amount", amountMessage)
	}
	return amount
}
