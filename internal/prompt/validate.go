package prompt

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	maxDBString = 30

	// maxSalary is the first value a decimal(12,2) column cannot hold.
	maxSalary = 1e10
)

func ValidateDBString(input string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(input))
	if length == 0 || length > maxDBString {
		return fmt.Errorf("Please enter a string of %d characters or less.", maxDBString)
	}
	return nil
}

func ValidateRequired(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("A value is required.")
	}
	return nil
}

func ValidateSalary(value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return errors.New("Salary must be a positive number")
	}
	if value >= maxSalary {
		return errors.New("Salary must be less than 10,000,000,000")
	}
	return nil
}

// NotIn rejects answers already present in existing. format receives the answer.
func NotIn(existing []string, format string) Validator {
	return func(input string) error {
		value := strings.TrimSpace(input)
		for _, item := range existing {
			if item == value {
				return fmt.Errorf(format, value)
			}
		}
		return nil
	}
}

// All runs validators in order and returns the first failure.
func All(validators ...Validator) Validator {
	return func(input string) error {
		for _, validate := range validators {
			if err := validate(input); err != nil {
				return err
			}
		}
		return nil
	}
}
