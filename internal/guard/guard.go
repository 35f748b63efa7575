// Package guard implements the missing-attachment check applied before a
// send is allowed. It is a keyword heuristic, not a guarantee: a body that
// mentions an attachment in passing still trips it, and phrasings outside
// the keyword list slip through. The user overrides a block by attaching a
// file or rewording.
package guard

import "strings"

// BlockMessage is the veto text shown to the user when a send is blocked.
const BlockMessage = "You mentioned an attachment but none is attached. Please attach the file before sending."

// attachmentKeywords trip the guard when the outgoing message carries no
// attachments.
var attachmentKeywords = []string{
	"attached",
	"attachment",
	"pdf",
	"invoice",
	"quote",
	"enclosed",
	"see attached",
}

// ShouldBlock reports whether an outgoing message should be vetoed: its body
// mentions an attachment while none is attached. Matching is case-insensitive.
func ShouldBlock(bodyText string, attachmentCount int) bool {
	if attachmentCount > 0 {
		return false
	}
	body := strings.ToLower(bodyText)
	for _, kw := range attachmentKeywords {
		if strings.Contains(body, kw) {
			return true
		}
	}
	return false
}
