// Package validation checks submitted form fields before anything touches
// storage. It is pure: no I/O, no logging.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Form is the raw submission. url.Values satisfies it.
type Form interface {
	Get(key string) string
}

// Values is a Form backed by a plain map.
type Values map[string]string

func (v Values) Get(key string) string {
	return v[key]
}

// FieldErrors maps a field name to every rule it violated, in rule order.
type FieldErrors map[string][]string

// Failure is the rejected branch of a validation: field messages plus a
// summary for the form banner.
type Failure struct {
	Errors  FieldErrors `json:"errors"`
	Message string      `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

// Has reports whether field has at least one message.
func (f *Failure) Has(field string) bool {
	return len(f.Errors[field]) > 0
}

type rule struct {
	tag     string
	message string
}

var validate = validator.New()

// checker collects messages for one submission.
type checker struct {
	errs FieldErrors
}

func newChecker() *checker {
	return &checker{errs: FieldErrors{}}
}

func (c *checker) Has(field string) bool {
	return len(c.errs[field]) > 0
}

func (c *checker) add(field, message string) {
	c.errs[field] = append(c.errs[field], message)
}

// check runs each rule independently so a field reports every violation.
func (c *checker) check(field string, value any, rules ...rule) {
	for _, r := range rules {
		if err := validate.Var(value, r.tag); err != nil {
			c.add(field, r.message)
		}
	}
}

func (c *checker) failed(message string) *Failure {
	if len(c.errs) == 0 {
		return nil
	}
	return &Failure{Errors: c.errs, Message: message}
}

func field(form Form, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(form.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

var idRules = []rule{
	{tag: "required", message: "Missing id."},
	{tag: "omitempty,uuid", message: "Invalid id."},
}

func parseID(c *checker, raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	c.check("id", raw, idRules...)
	if c.Has("id") {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.add("id", "Invalid id.")
		return uuid.Nil
	}
	return id
}
