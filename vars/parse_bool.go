package vars

import (
	"fmt"
	"strings"
)

// ParseBool accepts true/false, t/f, yes/no, y/n and 1/0, case insensitive.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a bool: %q", str)
}
