// Package mailbody extracts what the attachment guard needs from a raw
// RFC 822 message: the plain-text body and the number of attached files.
package mailbody

import (
	"io"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// Extract parses a raw message and returns its plain-text body and attachment
// count. The first text/plain part wins; HTML-only messages yield an empty
// body, which the guard treats as keyword-free.
func Extract(r io.Reader) (bodyText string, attachmentCount int, err error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return "", 0, err
	}
	defer mr.Close()

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, err
		}

		switch header := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, err := header.ContentType()
			if err != nil {
				continue
			}
			if bodyText == "" && strings.HasPrefix(contentType, "text/plain") {
				data, err := io.ReadAll(part.Body)
				if err != nil {
					return "", 0, err
				}
				bodyText = string(data)
			}
		case *mail.AttachmentHeader:
			attachmentCount++
		}
	}

	return bodyText, attachmentCount, nil
}
