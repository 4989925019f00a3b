package validation

import "github.com/google/uuid"

const (
	createCustomerMessage = "Missing Fields. Failed to Create Customer."
	updateCustomerMessage = "Missing Fields. Failed to Update Customer."
)

type CustomerInput struct {
	Name     string
	Email    string
	ImageURL string
}

type CustomerUpdate struct {
	ID    uuid.UUID
	Name  string
	Email string
}

var (
	nameRules  = []rule{{tag: "required", message: "Please enter a name."}}
	emailRules = []rule{
		{tag: "required", message: "Please enter an email address."},
		{tag: "omitempty,email", message: "Please enter a valid email address."},
	}
	imageRules = []rule{{tag: "required", message: "Please provide an image URL."}}
)

func ValidateCreateCustomer(form Form) (CustomerInput, *Failure) {
	c := newChecker()
	in := CustomerInput{
		Name:     field(form, "name"),
		Email:    field(form, "email"),
		ImageURL: field(form, "image_url", "imageUrl"),
	}
	c.check("name", in.Name, nameRules...)
	c.check("email", in.Email, emailRules...)
	c.check("imageUrl", in.ImageURL, imageRules...)
	if f := c.failed(createCustomerMessage); f != nil {
		return CustomerInput{}, f
	}
	return in, nil
}

// ValidateUpdateCustomer takes the id from the path, not the form.
func ValidateUpdateCustomer(id string, form Form) (CustomerUpdate, *Failure) {
	c := newChecker()
	up := CustomerUpdate{
		ID:    parseID(c, id),
		Name:  field(form, "name"),
		Email: field(form, "email"),
	}
	c.check("name", up.Name, nameRules...)
	c.check("email", up.Email, emailRules...)
	if f := c.failed(updateCustomerMessage); f != nil {
		return CustomerUpdate{}, f
	}
	return up, nil
}
