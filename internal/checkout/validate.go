package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidationError is a field-targeted input rejection raised before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidPhone reports whether phone is exactly ten digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Validate checks the checkout request against the snapshot. Every rule runs
// before the workflow touches the network; a violation blocks submission.
func (s *Snapshot) Validate(req Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if !ValidPhone(strings.TrimSpace(req.CustomerPhone)) {
		return &ValidationError{Field: "customer_phone", Message: "phone number must be exactly 10 digits"}
	}
	if len(req.Lines) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}

	for i, line := range req.Lines {
		field := fmt.Sprintf("items[%d]", i)
		if line.ItemID == 0 {
			return &ValidationError{Field: field, Message: "no item selected"}
		}
		item := s.ItemByID(line.ItemID)
		if item == nil {
			return &ValidationError{Field: field, Message: fmt.Sprintf("unknown item %d", line.ItemID)}
		}
		if line.Quantity <= 0 {
			return &ValidationError{Field: field, Message: "quantity must be greater than 0"}
		}
		if line.Quantity > item.Stock {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("insufficient stock for %q: available %d, requested %d", item.Name, item.Stock, line.Quantity),
			}
		}
	}
	return nil
}
