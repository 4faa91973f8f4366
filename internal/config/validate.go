package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	err := validate.Struct(cfg.App)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, friendlyMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func friendlyMessage(fe validator.FieldError) string {
	name := settingNames[fe.Field()]
	if name == "" {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s (got %q)", name, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "url", "http_url":
		return fmt.Sprintf("%s must be an http(s) URL (got %q)", name, fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be > %s (got %v)", name, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}

var settingNames = map[string]string{
	"Game":        "game",
	"APIRoot":     flagAPIRoot,
	"Timeout":     flagTimeout,
	"MinInterval": flagMinInterval,
	"Width":       flagWidth,
	"Height":      flagHeight,
}
