package submission

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	texttemplate "text/template"

	"github.com/pacam/formrelay/internal/notification"
)

//go:embed catalog/*.md
var embeddedCatalog embed.FS

const defaultBrandColor = "#1e40af"

var brandColorRx = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Copy is the per-kind wording read from a catalog file's front matter.
type Copy struct {
	Tag        string     `yaml:"tag"`
	Label      string     `yaml:"label"`
	Success    string     `yaml:"success"`
	BrandColor string     `yaml:"brandColor"`
	Fund       string     `yaml:"fund"`
	Attachment string     `yaml:"attachment"`
	Admin      AdminCopy  `yaml:"admin"`
	Client     ClientCopy `yaml:"client"`
}

// AdminCopy is the wording of the internal notice.
type AdminCopy struct {
	Subject       string   `yaml:"subject"`
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle"`
	Greeting      string   `yaml:"greeting"`
	Intro         string   `yaml:"intro"`
	NotesTitle    string   `yaml:"notesTitle"`
	Notes         []string `yaml:"notes"`
	Closing       string   `yaml:"closing"`
	FooterHeading string   `yaml:"footerHeading"`
	FooterNotes   []string `yaml:"footerNotes"`
}

// ClientCopy is the wording of client confirmations.
type ClientCopy struct {
	Subject       string   `yaml:"subject"`
	Title         string   `yaml:"title"`
	Badge         string   `yaml:"badge"`
	Lead          string   `yaml:"lead"`
	SummaryTitle  string   `yaml:"summaryTitle"`
	StepsTitle    string   `yaml:"stepsTitle"`
	Steps         []string `yaml:"steps"`
	NoticeTitle   string   `yaml:"noticeTitle"`
	Notices       []string `yaml:"notices"`
	FooterHeading string   `yaml:"footerHeading"`
}

// Entry is the catalog data of one kind.
type Entry struct {
	Copy
	Kind    Kind
	closing *texttemplate.Template
}

// closingData is what the markdown body of a catalog file can reference.
type closingData struct {
	ReferenceID string
	Name        string
	Fund        string
	Joint       bool
}

// Catalog holds the copy for every kind. It is read-only after loading.
type Catalog struct {
	entries map[Kind]*Entry
	md      *notification.Markdown
}

// DefaultCatalog loads the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		return nil, err
	}
	return LoadCatalog(sub)
}

// LoadCatalog reads <kind>.md for every kind from fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[Kind]*Entry, len(allKinds)),
		md:      notification.NewMarkdown(),
	}

	var errs []error
	for _, kind := range allKinds {
		entry, err := loadEntry(fsys, kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.entries[kind] = entry
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func loadEntry(fsys fs.FS, kind Kind) (*Entry, error) {
	name := string(kind) + ".md"
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogInvalid, name, err)
	}

	entry := &Entry{Kind: kind}
	body, err := notification.ParseFrontmatter(content, &entry.Copy)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogInvalid, name, err)
	}
	if err := entry.Copy.check(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogInvalid, name, err)
	}

	entry.closing, err = texttemplate.New(name).Option("missingkey=error").Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogInvalid, name, err)
	}
	return entry, nil
}

func (c *Copy) check() error {
	if c.BrandColor == "" {
		c.BrandColor = defaultBrandColor
	}
	if !brandColorRx.MatchString(c.BrandColor) {
		return fmt.Errorf("brandColor %q is not a hex colour", c.BrandColor)
	}

	for _, f := range []struct{ key, value string }{
		{"tag", c.Tag},
		{"label", c.Label},
		{"success", c.Success},
		{"attachment", c.Attachment},
		{"admin.subject", c.Admin.Subject},
		{"admin.title", c.Admin.Title},
		{"client.subject", c.Client.Subject},
		{"client.title", c.Client.Title},
	} {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.key)
		}
	}
	return nil
}

// Entry returns the copy of kind.
func (c *Catalog) Entry(kind Kind) (*Entry, error) {
	e, ok := c.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e, nil
}

// closing renders the markdown body of e for one confirmation.
func (c *Catalog) closing(e *Entry, data closingData) (notification.Fragment, error) {
	var buf bytes.Buffer
	if err := e.closing.Execute(&buf, data); err != nil {
		return notification.Fragment{}, fmt.Errorf("%w: %v", notification.ErrRenderFailed, err)
	}
	return c.md.Fragment(buf.Bytes())
}
