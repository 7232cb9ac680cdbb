package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// statusRule admits the ticket statuses defined in models.
const statusRule = "oneof=open in-progress resolved closed"

// newValidator reports fields by their json names so failures map straight
// onto response keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requiredMessage turns "title" into "Title is required".
func requiredMessage(field string) string {
	if field == "" {
		return ""
	}
	return strings.ToUpper(field[:1]) + field[1:] + " is required"
}
