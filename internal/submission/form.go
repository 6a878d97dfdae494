package submission

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/validator"
)

// Form is the decoded payload of one kind. The set of implementations is
// closed: RedemptionForm, CorporateInvestmentForm, MutualFundForm and
// EmailIndemnityForm.
type Form interface {
	// rules returns every check for the form, required fields first.
	rules() []validator.Rule
	// adminSections groups populated fields for the internal notice.
	adminSections(p *printer) []notification.Section
	// summary is the short recap shown in client confirmations.
	summary(p *printer) rows
	// confirmations lists client-facing recipients, primary first.
	confirmations() []Recipient
	// identifier names the submitter in attachment filenames.
	identifier() string
	// contactEmail is shown on the admin notice.
	contactEmail() string
	// mismatched lists fields whose JSON value had the wrong type.
	mismatched() []string
	markMismatched(fields []string)
}

// typeIssues is embedded in every form to carry decode-time type errors
// into validation.
type typeIssues struct {
	invalid []string
}

func (t *typeIssues) mismatched() []string { return t.invalid }

func (t *typeIssues) markMismatched(fields []string) { t.invalid = fields }

// Role is who a message is addressed to.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePrimary Role = "primary"
	RoleCopy    Role = "copy"
	RoleJoint   Role = "joint"
)

// Recipient is one addressee of a submission.
type Recipient struct {
	Role  Role
	Email string
	Name  string
}

// sameAddress compares addresses case-insensitively.
func sameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// field is one entry of a required-field table.
type field struct {
	name  string
	value Text
}

func required(fields ...field) []validator.Rule {
	out := make([]validator.Rule, 0, len(fields))
	for _, f := range fields {
		out = append(out, validator.RequiredString(f.name, string(f.value)))
	}
	return out
}

// emailIfPresent checks the format of an optional address.
func emailIfPresent(name string, value Text, msg string) []validator.Rule {
	if value.Empty() {
		return nil
	}
	return []validator.Rule{validator.Email(name, value.String()).WithMessage(msg)}
}

func consent(name string, f Flag, msg string) validator.Rule {
	return validator.True(name, f.True()).WithMessage(msg)
}

// DecodeForm decodes raw form data for kind. Fields are decoded one by one;
// a value of the wrong JSON type leaves its field empty and is reported by
// Validate alongside every other failure. A missing, non-object or malformed
// payload is a StructuralError.
func DecodeForm(kind Kind, raw json.RawMessage) (Form, error) {
	if isAbsent(raw) {
		return nil, &StructuralError{Missing: []string{"formData"}, Message: "formData is required"}
	}
	if trimmed := strings.TrimSpace(string(raw)); trimmed[0] != '{' {
		return nil, &StructuralError{Message: "formData must be an object"}
	}

	var form Form
	switch {
	case kind == KindRedemption || kind.isFundRedemption():
		form = &RedemptionForm{}
	case kind == KindCorporateInvestment:
		form = &CorporateInvestmentForm{}
	case kind == KindMutualFund:
		form = &MutualFundForm{}
	case kind == KindEmailIndemnity:
		form = &EmailIndemnityForm{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &StructuralError{Message: "formData is not valid JSON", Err: err}
	}
	form.markMismatched(decodeFields(obj, form))
	return form, nil
}

// decodeFields fills the json-tagged fields of form from obj and returns,
// in declaration order, the names of those whose value did not fit.
func decodeFields(obj map[string]json.RawMessage, form Form) []string {
	v := reflect.ValueOf(form).Elem()
	t := v.Type()

	var invalid []string
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		data, ok := obj[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, v.Field(i).Addr().Interface()); err != nil {
			v.Field(i).SetZero()
			invalid = append(invalid, name)
		}
	}
	return invalid
}

func isAbsent(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
