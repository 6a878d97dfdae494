package notification

import (
	"time"

	"github.com/pacam/formrelay/pkg/mailer"
)

// Document describes one outgoing email. It is built per message and consumed
// once by [Renderer.Render].
type Document struct {
	GeneratedAt   time.Time
	Badge         *Badge
	Title         string
	Subtitle      string
	BrandColor    string
	Recipient     string
	Subject       string
	Greeting      string
	ReferenceID   string
	FooterHeading string
	Lead          []string
	Sections      []Section
	Closing       Fragment
	FooterNotes   []string
	Attachments   []mailer.Attachment
	IsClientCopy  bool
}

// Badge is the highlighted confirmation box at the top of a client copy.
type Badge struct {
	Heading string
	Detail  string
}

// Tone selects how a section is framed in the layout.
type Tone string

const (
	ToneDefault Tone = ""
	ToneNotice  Tone = "notice"
)

// Section is a titled block of content.
type Section struct {
	Title string
	Tone  Tone
	Body  Fragment
}

// Year is the copyright year printed in the footer.
func (d *Document) Year() int {
	if d.GeneratedAt.IsZero() {
		return time.Now().Year()
	}
	return d.GeneratedAt.Year()
}

// Message is a rendered Document.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Email converts the rendered message into a mailer.Email addressed to the
// document recipient and carrying the document attachments.
func (d *Document) Email(msg *Message) *mailer.Email {
	return &mailer.Email{
		To:          []string{d.Recipient},
		Subject:     msg.Subject,
		HTML:        msg.HTML,
		Text:        msg.Text,
		Attachments: d.Attachments,
	}
}
