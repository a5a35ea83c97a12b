// FILE: lixenwraith/fixlog/sanitizer/sanitizer.go
// Package sanitizer rewrites untrusted string fields before they are placed
// in a log record, using bitwise filter flags paired with transforms.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes not printable per strconv.IsPrint
	FilterControl                         // Control characters (unicode.IsControl)
	FilterWhitespace                      // Whitespace (unicode.IsSpace)
	FilterShellSpecial                    // Shell metacharacters: '`', '$', ';', '|', '&', '>', '<', '(', ')', '#'
	FilterNewline                         // '\n' and '\r', the record delimiter
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the UTF-8 bytes as "<xxyy>"
	TransformEscape                       // Backslash escape ('\n', '\u0001')
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw    PolicyPreset = "raw"    // No-op passthrough
	PolicyTxt    PolicyPreset = "txt"    // Hex-encode anything non-printable
	PolicyEscape PolicyPreset = "escape" // Backslash-escape control characters, keeps records on one line
	PolicyShell  PolicyPreset = "shell"  // Strip shell metacharacters and whitespace
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:    {},
	PolicyTxt:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyEscape: {{filter: FilterControl, transform: TransformEscape}},
	PolicyShell:  {{filter: FilterShellSpecial | FilterWhitespace, transform: TransformStrip}},
}

// checkers in flag order, so matching is deterministic
var checkers = [...]struct {
	flag  uint64
	check func(rune) bool
}{
	{FilterNonPrintable, func(r rune) bool { return !strconv.IsPrint(r) }},
	{FilterControl, unicode.IsControl},
	{FilterWhitespace, unicode.IsSpace},
	{FilterShellSpecial, func(r rune) bool {
		switch r {
		case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
			return true
		}
		return false
	}},
	{FilterNewline, func(r rune) bool { return r == '\n' || r == '\r' }},
}

// ParsePolicy validates a policy name
func ParsePolicy(name string) (PolicyPreset, error) {
	p := PolicyPreset(name)
	if _, ok := policyRules[p]; !ok {
		return "", fmt.Errorf("unknown sanitization policy '%s'", name)
	}
	return p, nil
}

// Sanitizer provides chainable text sanitization.
// Rules are immutable after setup, so a configured Sanitizer is safe for concurrent use.
type Sanitizer struct {
	rules []rule
}

// New creates a Sanitizer with no rules
func New() *Sanitizer {
	return &Sanitizer{}
}

// Rule adds a custom rule. Earlier rules take precedence.
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether the sanitizer leaves input unchanged
func (s *Sanitizer) Passthrough() bool { return len(s.rules) == 0 }

// AppendTo appends the sanitized form of data to dst
func (s *Sanitizer) AppendTo(dst []byte, data string) []byte {
	if len(s.rules) == 0 {
		return append(dst, data...)
	}
	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				dst = applyTransform(dst, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

// Sanitize returns the sanitized form of data
func (s *Sanitizer) Sanitize(data string) string {
	return string(s.AppendTo(make([]byte, 0, len(data)), data))
}

func matchesFilter(r rune, mask uint64) bool {
	for _, c := range checkers {
		if mask&c.flag != 0 && c.check(r) {
			return true
		}
	}
	return false
}

func applyTransform(dst []byte, r rune, mask uint64) []byte {
	switch {
	case mask&TransformStrip != 0:
		return dst

	case mask&TransformHexEncode != 0:
		var rb [utf8.UTFMax]byte
		n := utf8.EncodeRune(rb[:], r)
		dst = append(dst, '<')
		dst = hex.AppendEncode(dst, rb[:n])
		return append(dst, '>')

	case mask&TransformEscape != 0:
		switch r {
		case '\n':
			return append(dst, '\\', 'n')
		case '\r':
			return append(dst, '\\', 'r')
		case '\t':
			return append(dst, '\\', 't')
		case '\b':
			return append(dst, '\\', 'b')
		case '\f':
			return append(dst, '\\', 'f')
		case '\\':
			return append(dst, '\\', '\\')
		}
		if r < 0x20 || r == 0x7f {
			dst = append(dst, '\\', 'u', '0', '0')
			if r < 0x10 {
				dst = append(dst, '0')
			}
			return strconv.AppendInt(dst, int64(r), 16)
		}
	}
	return utf8.AppendRune(dst, r)
}
