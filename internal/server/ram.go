// Package server implements the managed server entity.
package server

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRAM reports a malformed memory allocation token.
var ErrInvalidRAM = errors.New("invalid RAM value")

// ramPattern matches a java -Xmx token: a magnitude and a unit letter.
var ramPattern = regexp.MustCompile(`^([0-9]+)([kKmMgGtT])$`)

// NormalizeRAM validates a memory token and normalizes its unit to
// upper case ("4g" becomes "4G"). A token without a unit is rejected:
// a bare number is ambiguous and java would read it as bytes.
//
// Parameters:
//   - token: The candidate memory token
//
// Returns:
//   - string: The normalized token
//   - error: ErrInvalidRAM (wrapped) when the token is malformed
func NormalizeRAM(token string) (string, error) {
	m := ramPattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return "", fmt.Errorf("%w: %q (expected <number><K|M|G|T>, e.g. 4G)", ErrInvalidRAM, token)
	}
	return m[1] + strings.ToUpper(m[2]), nil
}
