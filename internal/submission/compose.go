package submission

import (
	"strconv"
	"strings"
	"time"

	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/mailer"
	"github.com/pacam/formrelay/pkg/sanitizer"
)

const submittedAtLayout = "2 January 2006 15:04:05 MST"

// Stamp ties every message of one submission together.
type Stamp struct {
	At          time.Time
	ReferenceID string
}

// Composer turns a decoded submission into notification documents. It has no
// side effects; the same input always yields the same document.
type Composer struct {
	catalog *Catalog
}

// NewComposer returns a composer reading copy from catalog.
func NewComposer(catalog *Catalog) *Composer {
	return &Composer{catalog: catalog}
}

// ComposeAdmin builds the internal notice addressed to the admin recipient.
func (c *Composer) ComposeAdmin(sub *Submission, st Stamp) (*notification.Document, error) {
	entry, err := c.catalog.Entry(sub.Kind)
	if err != nil {
		return nil, err
	}

	attachments := c.attachments(sub, entry, st.At)
	p := newPrinter()

	sections := sub.Form.adminSections(p)

	names := make([]string, len(attachments))
	for i, a := range attachments {
		names[i] = a.Filename
	}
	sections = append(sections, notification.Section{
		Title: "Document Attachments",
		Body:  notification.Bullets(names...),
	})

	if len(entry.Admin.Notes) > 0 {
		sections = append(sections, notification.Section{
			Title: entry.Admin.NotesTitle,
			Tone:  notification.ToneNotice,
			Body:  notification.Bullets(entry.Admin.Notes...),
		})
	}

	var details rows
	details.show("Submitted On", st.At.UTC().Format(submittedAtLayout))
	details.show("Reference ID", st.ReferenceID)
	details.show("Client Email", sub.Form.contactEmail())
	sections = appendSection(sections, "Submission Details", details)

	doc := &notification.Document{
		GeneratedAt:   st.At,
		Title:         entry.Admin.Title,
		Subtitle:      entry.Admin.Subtitle,
		BrandColor:    entry.BrandColor,
		Recipient:     sub.AdminRecipient,
		Subject:       entry.Admin.Subject,
		Greeting:      entry.Admin.Greeting,
		ReferenceID:   st.ReferenceID,
		FooterHeading: entry.Admin.FooterHeading,
		FooterNotes:   entry.Admin.FooterNotes,
		Sections:      sections,
		Attachments:   attachments,
	}
	if entry.Admin.Intro != "" {
		doc.Lead = []string{entry.Admin.Intro}
	}
	if entry.Admin.Closing != "" {
		doc.Closing = notification.Paragraphs(entry.Admin.Closing)
	}
	return doc, nil
}

// ComposeConfirmation builds the client confirmation addressed to to. It is
// called once per confirmation recipient with the same stamp.
func (c *Composer) ComposeConfirmation(sub *Submission, to Recipient, st Stamp) (*notification.Document, error) {
	entry, err := c.catalog.Entry(sub.Kind)
	if err != nil {
		return nil, err
	}

	p := newPrinter()
	var sections []notification.Section

	summary := sub.Form.summary(p)
	summary.opt("Fund Type", entry.Fund)
	sections = appendSection(sections, entry.Client.SummaryTitle, summary)

	if len(entry.Client.Steps) > 0 {
		sections = append(sections, notification.Section{
			Title: entry.Client.StepsTitle,
			Body:  notification.Bullets(entry.Client.Steps...),
		})
	}
	if len(entry.Client.Notices) > 0 {
		sections = append(sections, notification.Section{
			Title: entry.Client.NoticeTitle,
			Tone:  notification.ToneNotice,
			Body:  notification.Bullets(entry.Client.Notices...),
		})
	}

	closing, err := c.catalog.closing(entry, closingData{
		ReferenceID: st.ReferenceID,
		Name:        to.Name,
		Fund:        entry.Fund,
		Joint:       isJoint(sub.Form),
	})
	if err != nil {
		return nil, err
	}

	doc := &notification.Document{
		GeneratedAt: st.At,
		Title:       entry.Client.Title,
		BrandColor:  entry.BrandColor,
		Recipient:   to.Email,
		Subject:     entry.Client.Subject,
		Greeting:    greeting(to.Name),
		Badge: &notification.Badge{
			Heading: entry.Client.Badge,
			Detail:  "Reference: " + st.ReferenceID,
		},
		ReferenceID:   st.ReferenceID,
		FooterHeading: entry.Client.FooterHeading,
		Sections:      sections,
		Closing:       closing,
		Attachments:   c.attachments(sub, entry, st.At),
		IsClientCopy:  true,
	}
	if entry.Client.Lead != "" {
		doc.Lead = []string{entry.Client.Lead}
	}
	return doc, nil
}

// attachments puts the submitted PDF first, named after the submitter and the
// submission time, followed by uploads in the order given.
func (c *Composer) attachments(sub *Submission, entry *Entry, at time.Time) []mailer.Attachment {
	out := make([]mailer.Attachment, 0, 1+len(sub.Attachments))
	out = append(out, mailer.Attachment{
		Filename:    primaryFilename(entry.Attachment, sub.Form.identifier(), at),
		ContentType: mimePDF,
		Content:     sub.PDF,
	})
	return append(out, sub.Attachments...)
}

var pathSeparators = strings.NewReplacer("/", "_", `\`, "_")

func primaryFilename(prefix, ident string, at time.Time) string {
	parts := []string{prefix}
	if ident = pathSeparators.Replace(strings.TrimSpace(ident)); ident != "" {
		parts = append(parts, ident)
	}
	parts = append(parts, strconv.FormatInt(at.UnixMilli(), 10))
	return sanitizer.Filename(strings.Join(parts, "_") + ".pdf")
}

func greeting(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Dear Valued Client,"
	}
	return "Dear " + name + ","
}

func isJoint(f Form) bool {
	mf, ok := f.(*MutualFundForm)
	return ok && mf.joint()
}
