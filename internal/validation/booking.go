package validation

import (
	"errors"
	"reflect"
	"strings"

	"streetshine/internal/catalog"
	"streetshine/internal/db"

	"github.com/go-playground/validator/v10"
)

// BookingValidator checks a booking draft before it is handed to the store.
// The result is a field name → message map; an empty map means the draft is
// submittable.
type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() (*BookingValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"notblank":    notBlank,
		"phonedigits": phoneDigits,
		"simpleemail": simpleEmail,
		"servicetype": serviceType,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}

	// Report fields under their JSON names so the form can key on them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &BookingValidator{validate: v}, nil
}

// Validate returns one message per invalid field. Nil when the draft is valid.
func (bv *BookingValidator) Validate(input db.BookingInput) map[string]string {
	err := bv.validate.Struct(input)
	if err == nil {
		return nil
	}

	fieldErrs := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrs[fe.Field()] = messageFor(fe)
		}
	} else {
		fieldErrs["_"] = "invalid booking request"
	}
	return fieldErrs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "phonedigits":
		return "Enter a phone number with at least 7 digits."
	case "simpleemail":
		return "Enter a valid email address."
	case "servicetype":
		return "Select a service."
	default:
		switch fe.Field() {
		case "name":
			return "Name is required."
		case "vehicle_info":
			return "Vehicle make and model are required."
		case "preferred_date":
			return "Pick a preferred date."
		default:
			return "This field is required."
		}
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// phoneDigits requires at least 7 digit characters, ignoring any formatting.
func phoneDigits(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// simpleEmail accepts local@domain.tld: a non-empty local part, one @, at
// least one dot after it (not in last position), and no whitespace.
func simpleEmail(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	dot := strings.LastIndex(s, ".")
	return dot > at+1 && dot < len(s)-1
}

func serviceType(fl validator.FieldLevel) bool {
	return catalog.ValidServiceType(fl.Field().String())
}
