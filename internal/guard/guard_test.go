package guard

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestShouldBlock(t *testing.T) {
	cases := []struct {
		name            string
		body            string
		attachmentCount int
		want            bool
	}{
		{"keyword without attachment", "Please see the attached invoice", 0, true},
		{"keyword with attachment", "Please see the attached invoice", 1, false},
		{"no keyword", "Thanks, talk soon", 0, false},
		{"uppercase keyword", "The PDF is ready for review", 0, true},
		{"enclosed keyword", "Enclosed you will find the contract", 0, true},
		{"quote keyword", "Here is the quote you asked for", 0, true},
		{"empty body", "", 0, false},
		{"keyword with many attachments", "attachment incoming", 3, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ShouldBlock(tc.body, tc.attachmentCount)
			if got != tc.want {
				t.Errorf("ShouldBlock(%q, %d) = %v, want %v", tc.body, tc.attachmentCount, got, tc.want)
			}
		})
	}
}

func TestShouldBlockProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	bodyGen := gen.AnyString()

	// Attaching a file always clears a block, whatever the body says.
	properties.Property("never_blocks_with_attachments", prop.ForAll(
		func(body string, count int) bool {
			return !ShouldBlock(body, count)
		},
		bodyGen,
		gen.IntRange(1, 10),
	))

	// The guard is case-insensitive: casing never changes the decision.
	properties.Property("case_insensitive", prop.ForAll(
		func(body string) bool {
			return ShouldBlock(body, 0) == ShouldBlock(stringsUpper(body), 0)
		},
		bodyGen,
	))

	properties.TestingRun(t)
}

func stringsUpper(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}
