package hypr

import "errors"

// Failure classes for the compositor control tool. Callers pick them
// apart with errors.Is.
var (
	// ErrToolNotFound means hyprctl is missing from PATH. Checked once
	// at startup and fatal there.
	ErrToolNotFound = errors.New("hyprctl not found in PATH")

	// ErrExternalTool means a hyprctl invocation failed at query time.
	ErrExternalTool = errors.New("hyprctl invocation failed")

	// ErrMalformedData means hyprctl output could not be parsed.
	ErrMalformedData = errors.New("malformed hyprctl output")
)
