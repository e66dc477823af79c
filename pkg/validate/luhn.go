package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether a payment order number passes the Luhn check.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
