package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/being-saiful/productivity-tracker1/internal/roadmap"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// Empty career is fine (generic checklist); a non-empty one must
		// name a known roadmap
		validate.RegisterValidation("career", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			for _, id := range roadmap.Careers() {
				if id == value {
					return true
				}
			}
			return false
		})
	})
}
