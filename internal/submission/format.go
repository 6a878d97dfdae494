package submission

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pacam/formrelay/internal/notification"
)

const notProvided = "Not provided"

// choiceLabels spells out option values whose title-cased form reads badly.
var choiceLabels = map[string]string{
	"pacam_money_market":     "PACAM Money Market Fund",
	"pacam_fixed_income":     "PACAM Fixed Income Fund",
	"pacam_balanced":         "PACAM Balanced Fund",
	"pacam_equity":           "PACAM Equity Fund",
	"pacam_eurobond":         "PACAM Eurobond Fund",
	"national_id":            "National ID",
	"drivers_license":        "Driver's License",
	"voters_card":            "Voter's Card",
	"international_passport": "International Passport",
	"bvn":                    "BVN",
}

// printer formats form values for display. Casers are stateful, so a printer
// belongs to a single composition.
type printer struct {
	title cases.Caser
	num   *message.Printer
}

func newPrinter() *printer {
	return &printer{
		title: cases.Title(language.English),
		num:   message.NewPrinter(language.English),
	}
}

// choice turns an option value such as "retail_domestic" into "Retail Domestic".
func (p *printer) choice(t Text) string {
	v := t.String()
	if v == "" {
		return ""
	}
	if label, ok := choiceLabels[strings.ToLower(v)]; ok {
		return label
	}
	return p.title.String(strings.NewReplacer("_", " ", "-", " ").Replace(v))
}

// amount groups the digits of whole numbers; anything else is returned as typed.
func (p *printer) amount(t Text) string {
	v := t.String()
	n, err := strconv.ParseInt(strings.ReplaceAll(v, ",", ""), 10, 64)
	if err != nil {
		return v
	}
	return p.num.Sprintf("%d", n)
}

// yesNo renders "yes"/"no" answers.
func (p *printer) yesNo(t Text) string {
	switch strings.ToLower(t.String()) {
	case "yes", "true":
		return "Yes"
	case "no", "false":
		return "No"
	}
	return p.choice(t)
}

func (p *printer) flag(f Flag) string {
	if f.True() {
		return "Yes"
	}
	return "No"
}

func provided(t Text) string {
	if t.Empty() {
		return ""
	}
	return "Provided"
}

func joinName(parts ...Text) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := p.String(); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}

// rows collects table rows. show keeps empty values as "Not provided";
// opt drops them.
type rows []notification.Row

func (r *rows) show(label, value string) {
	if value == "" {
		value = notProvided
	}
	*r = append(*r, notification.Row{Label: label, Value: value})
}

func (r *rows) opt(label, value string) {
	if value == "" {
		return
	}
	*r = append(*r, notification.Row{Label: label, Value: value})
}

// appendSection adds a table section unless it has no rows.
func appendSection(sections []notification.Section, title string, r rows) []notification.Section {
	if len(r) == 0 {
		return sections
	}
	return append(sections, notification.Section{Title: title, Body: notification.Table(r...)})
}
