// FILE: lixenwraith/fixlog/sanitizer/sanitizer_test.go
package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizerPolicies(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09form\x0c",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>form<0c>",
		},
		{
			name:     "txt hex encodes multi-byte control",
			input:    "line1\u0085line2",
			policy:   PolicyTxt,
			expected: "line1<c285>line2",
		},
		{
			name:     "txt preserves UTF-8",
			input:    "Hello 世界 ✓",
			policy:   PolicyTxt,
			expected: "Hello 世界 ✓",
		},
		{
			name:     "escape common control chars",
			input:    "line1\nline2\ttab\rreturn",
			policy:   PolicyEscape,
			expected: `line1\nline2\ttab\rreturn`,
		},
		{
			name:     "escape low control as unicode",
			input:    "text\x01\x1f",
			policy:   PolicyEscape,
			expected: `text\u0001\u001f`,
		},
		{
			name:     "escape backspace and form feed",
			input:    "back\bspace form\ffeed",
			policy:   PolicyEscape,
			expected: `back\bspace form\ffeed`,
		},
		{
			name:     "shell strips metacharacters and spaces",
			input:    "rm -rf $(pwd); echo `id`",
			policy:   PolicyShell,
			expected: "rm-rfpwdechoid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.policy)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestSanitizerRuleOrder(t *testing.T) {
	// First matching rule wins
	s := New().
		Rule(FilterNewline, TransformStrip).
		Rule(FilterControl, TransformHexEncode)
	assert.Equal(t, "ab<09>c", s.Sanitize("a\nb\tc\r"))
}

func TestAppendTo(t *testing.T) {
	s := New().Policy(PolicyTxt)
	dst := []byte("prefix:")
	dst = s.AppendTo(dst, "x\x00y")
	assert.Equal(t, "prefix:x<00>y", string(dst))

	assert.True(t, New().Passthrough())
	assert.False(t, s.Passthrough())
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"raw", "txt", "escape", "shell"} {
		p, err := ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, PolicyPreset(name), p)
	}
	_, err := ParsePolicy("json")
	assert.Error(t, err)
}

func BenchmarkSanitizer(b *testing.B) {
	input := strings.Repeat("normal text\x00\n\t", 100)

	for _, p := range []PolicyPreset{PolicyRaw, PolicyTxt, PolicyEscape, PolicyShell} {
		b.Run(string(p), func(b *testing.B) {
			s := New().Policy(p)
			buf := make([]byte, 0, 4096)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = s.AppendTo(buf[:0], input)
			}
		})
	}
}
