package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeInvalidConfig marks a self-contradictory NumberFormatOptions
	// combination. Raised at construction time, never at call time.
	CodeInvalidConfig = "invalid_config"
	// CodeNoMatch marks reader input with no valid numeral prefix.
	CodeNoMatch = "no_match"
	// CodeNotRepresentable marks a value the writer cannot render under the
	// given options.
	CodeNotRepresentable = "not_representable"
	// CodeOverflow marks a numeral that matched but exceeds the range of the
	// target machine type.
	CodeOverflow = "overflow"
)

// Issue represents a single codec failure entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error (e.g. strconv range error).
	// Params carries structured parameters (e.g., {"max":4, "got":7})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of codec failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. no_match: no numeral at start of input
		fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// hasCode reports whether err carries at least one Issue with the given code.
func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsNoMatch reports whether err means the reader found no valid prefix.
func IsNoMatch(err error) bool { return hasCode(err, CodeNoMatch) }

// IsNotRepresentable reports whether err means the writer rejected the value.
func IsNotRepresentable(err error) bool { return hasCode(err, CodeNotRepresentable) }

// IsConfigError reports whether err means the options were self-contradictory.
func IsConfigError(err error) bool { return hasCode(err, CodeInvalidConfig) }

// IsOverflow reports whether err means the numeral exceeds the target type range.
func IsOverflow(err error) bool { return hasCode(err, CodeOverflow) }
