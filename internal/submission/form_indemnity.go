package submission

import (
	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/validator"
)

// Indemnity variants.
const (
	VariantIndividual = "individual"
	VariantCorporate  = "corporate"
)

// EmailIndemnityForm is consent to electronic instructions. Corporate
// agreements are signed by up to two signatories; individual ones by the
// account holder.
type EmailIndemnityForm struct {
	typeIssues

	PreferredEmail     Text `json:"preferredEmail"`
	PreferredPhone     Text `json:"preferredPhone"`
	AccountHolderName  Text `json:"accountHolderName"`
	CompanyName        Text `json:"companyName"`
	SignatureDate      Text `json:"signatureDate"`
	AgreedToTerms      Flag `json:"agreedToTerms"`
	Signature          Text `json:"signature"`
	PrimarySignature   Text `json:"primarySignature"`
	SecondarySignature Text `json:"secondarySignature"`
	Variant            Text `json:"variant"`
}

func (f *EmailIndemnityForm) corporate() bool {
	return f.Variant.String() == VariantCorporate
}

func (f *EmailIndemnityForm) rules() []validator.Rule {
	fields := []field{{"preferredEmail", f.PreferredEmail}}
	if f.corporate() {
		fields = append(fields, field{"companyName", f.CompanyName}, field{"primarySignature", f.PrimarySignature})
	} else {
		fields = append(fields, field{"accountHolderName", f.AccountHolderName}, field{"signature", f.Signature})
	}

	rs := required(fields...)
	rs = append(rs, emailIfPresent("preferredEmail", f.PreferredEmail, "Invalid email format")...)
	return append(rs, consent("agreedToTerms", f.AgreedToTerms, "Agreement to terms is required"))
}

func (f *EmailIndemnityForm) holder() string {
	if f.corporate() {
		return f.CompanyName.String()
	}
	return f.AccountHolderName.String()
}

func (f *EmailIndemnityForm) variantLabel() string {
	if f.corporate() {
		return "Corporate"
	}
	return "Individual"
}

func (f *EmailIndemnityForm) adminSections(p *printer) []notification.Section {
	var contact rows
	contact.show("Agreement Type", f.variantLabel())
	if f.corporate() {
		contact.show("Company Name", f.CompanyName.String())
	} else {
		contact.show("Account Holder Name", f.AccountHolderName.String())
	}
	contact.show("Preferred Email", f.PreferredEmail.String())
	contact.opt("Preferred Phone", f.PreferredPhone.String())
	contact.opt("Signature Date", f.SignatureDate.String())

	var sigs rows
	if f.corporate() {
		sigs.show("Primary Signatory", provided(f.PrimarySignature))
		sigs.opt("Secondary Signatory", provided(f.SecondarySignature))
	} else {
		sigs.show("Account Holder", provided(f.Signature))
	}
	sigs.show("Agreed to Terms", p.flag(f.AgreedToTerms))

	var out []notification.Section
	out = appendSection(out, "Contact Information", contact)
	return appendSection(out, "Agreement and Signatures", sigs)
}

func (f *EmailIndemnityForm) summary(_ *printer) rows {
	var r rows
	r.opt("Agreement Type", f.variantLabel())
	r.opt("Preferred Email", f.PreferredEmail.String())
	r.opt("Preferred Phone", f.PreferredPhone.String())
	return r
}

func (f *EmailIndemnityForm) confirmations() []Recipient {
	return []Recipient{{Role: RolePrimary, Email: f.PreferredEmail.String(), Name: f.holder()}}
}

func (f *EmailIndemnityForm) identifier() string { return f.holder() }

func (f *EmailIndemnityForm) contactEmail() string { return f.PreferredEmail.String() }
