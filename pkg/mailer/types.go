package mailer

import "fmt"

// Tags are provider tags: presence-only (struct{}{}) or name/value pairs.
type Tags map[string]any

// SimpleTags creates presence-only tags.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats "Name <email>", or just email when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a message ready for delivery.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string
	From        string // overrides the provider's default sender
	ReplyTo     string
	To          []string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Attachment is a file sent along with an Email.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string // set for inline images
	Content     []byte
}

// Size returns the combined size of all attachment payloads in bytes.
func (e *Email) Size() int {
	n := 0
	for _, a := range e.Attachments {
		n += len(a.Content)
	}
	return n
}
