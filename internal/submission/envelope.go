package submission

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/pacam/formrelay/pkg/mailer"
	"github.com/pacam/formrelay/pkg/sanitizer"
	"github.com/pacam/formrelay/pkg/validator"
)

const (
	mimePDF         = "application/pdf"
	mimeOctetStream = "application/octet-stream"
)

// Envelope is the request body of a submit call.
type Envelope struct {
	FormData         json.RawMessage     `json:"formData"`
	PDFContent       string              `json:"pdfContent"`
	AdminEmail       string              `json:"adminEmail"`
	FundManagerEmail string              `json:"fundManagerEmail,omitempty"`
	Attachments      []AttachmentPayload `json:"attachments,omitempty"`
}

// AttachmentPayload is a supporting document uploaded with the form.
type AttachmentPayload struct {
	Filename     string `json:"filename"`
	Content      string `json:"content"`
	Type         string `json:"type"`
	DocumentType string `json:"documentType,omitempty"`
	Size         int64  `json:"size"`
}

// Submission is a decoded envelope, ready for validation.
type Submission struct {
	Form           Form
	Kind           Kind
	AdminRecipient string
	PDF            []byte
	Attachments    []mailer.Attachment
}

// adminKey is the envelope key naming the admin recipient for kind.
func adminKey(kind Kind) string {
	if kind == KindRedemption {
		return "fundManagerEmail"
	}
	return "adminEmail"
}

// adminRecipient prefers adminEmail and falls back to the legacy fundManagerEmail key.
func (e *Envelope) adminRecipient() string {
	if a := strings.TrimSpace(e.AdminEmail); a != "" {
		return a
	}
	return strings.TrimSpace(e.FundManagerEmail)
}

// Decode checks the envelope structure and decodes every payload.
// Structural problems come back as *StructuralError before the form is looked at.
func (e *Envelope) Decode(kind Kind) (*Submission, error) {
	admin := e.adminRecipient()

	var missing []string
	if isAbsent(e.FormData) {
		missing = append(missing, "formData")
	}
	if strings.TrimSpace(e.PDFContent) == "" {
		missing = append(missing, "pdfContent")
	}
	if admin == "" {
		missing = append(missing, adminKey(kind))
	}
	if len(missing) > 0 {
		return nil, &StructuralError{
			Missing: missing,
			Message: fmt.Sprintf("Missing required fields: formData, pdfContent, and %s are required", adminKey(kind)),
		}
	}

	if !validator.IsEmail(admin) {
		return nil, &StructuralError{Message: adminKey(kind) + " is not a valid email address"}
	}

	pdf, _, err := decodeBase64(e.PDFContent)
	if err != nil {
		return nil, &StructuralError{Message: "pdfContent is not valid base64", Err: err}
	}

	attachments := make([]mailer.Attachment, 0, len(e.Attachments))
	for i, a := range e.Attachments {
		att, err := a.decode()
		if err != nil {
			return nil, &StructuralError{Message: fmt.Sprintf("attachments[%d] is invalid", i), Err: err}
		}
		attachments = append(attachments, att)
	}

	form, err := DecodeForm(kind, e.FormData)
	if err != nil {
		return nil, err
	}

	return &Submission{
		Kind:           kind,
		Form:           form,
		AdminRecipient: admin,
		PDF:            pdf,
		Attachments:    attachments,
	}, nil
}

func (a AttachmentPayload) decode() (mailer.Attachment, error) {
	name := sanitizer.Filename(a.Filename)
	if name == "" {
		return mailer.Attachment{}, errors.New("filename is required")
	}

	content, dataType, err := decodeBase64(a.Content)
	if err != nil {
		return mailer.Attachment{}, err
	}
	if len(content) == 0 {
		return mailer.Attachment{}, fmt.Errorf("%s has no content", name)
	}

	return mailer.Attachment{
		Filename:    name,
		ContentType: contentType(a.Type, dataType, content),
		Content:     content,
	}, nil
}

// decodeBase64 accepts plain base64 or a data URL and returns the bytes and
// the media type named by the data URL, if any.
func decodeBase64(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var mediaType string
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, "", errors.New("unsupported data URL")
		}
		mediaType = strings.TrimSuffix(meta, ";base64")
		s = payload
	}

	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	}
	if err != nil {
		return nil, "", err
	}
	return b, mediaType, nil
}

// contentType picks the declared type when it parses, then the data URL
// type, then sniffs the content.
func contentType(declared, dataType string, content []byte) string {
	for _, t := range []string{declared, dataType} {
		if t == "" || t == mimeOctetStream {
			continue
		}
		if mt, _, err := mime.ParseMediaType(t); err == nil {
			return mt
		}
	}
	sniffed := http.DetectContentType(content)
	if mt, _, err := mime.ParseMediaType(sniffed); err == nil {
		return mt
	}
	return mimeOctetStream
}
