package submission

import (
	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/validator"
)

// RedemptionForm is the unit redemption request. The generic redemption and
// the four fund-specific redemptions share it.
type RedemptionForm struct {
	typeIssues

	Date                 Text `json:"date"`
	FullName             Text `json:"fullName"`
	ClientID             Text `json:"clientId"`
	TelephoneNumber      Text `json:"telephoneNumber"`
	Email                Text `json:"email"`
	UnitsToRedeemFigures Text `json:"unitsToRedeemFigures"`
	UnitsToRedeemWords   Text `json:"unitsToRedeemWords"`
	Bank                 Text `json:"bank"`
	Branch               Text `json:"branch"`
	SortCode             Text `json:"sortCode"`
	AccountNumber        Text `json:"accountNumber"`
	AccountName          Text `json:"accountName"`
	CertificateNumbers   Text `json:"certificateNumbers"`
	TotalUnits           Text `json:"totalUnits"`
	PreviousRedemption   Text `json:"previousRedemption"`
	Balance              Text `json:"balance"`
	CurrentRedemption    Text `json:"currentRedemption"`
	UserEmail            Text `json:"userEmail"`
	PrimarySignature     Text `json:"primarySignature"`
	JointSignature       Text `json:"jointSignature"`
}

func (f *RedemptionForm) rules() []validator.Rule {
	rs := required(
		field{"fullName", f.FullName},
		field{"clientId", f.ClientID},
		field{"email", f.Email},
		field{"unitsToRedeemFigures", f.UnitsToRedeemFigures},
		field{"unitsToRedeemWords", f.UnitsToRedeemWords},
		field{"bank", f.Bank},
		field{"branch", f.Branch},
		field{"sortCode", f.SortCode},
		field{"accountNumber", f.AccountNumber},
		field{"accountName", f.AccountName},
	)
	rs = append(rs, emailIfPresent("email", f.Email, "Invalid email format")...)
	rs = append(rs, emailIfPresent("userEmail", f.UserEmail, "Invalid user email format")...)
	return rs
}

func (f *RedemptionForm) adminSections(p *printer) []notification.Section {
	var client rows
	client.show("Full Name", f.FullName.String())
	client.show("Client ID", f.ClientID.String())
	client.show("Email", f.Email.String())
	client.show("Telephone", f.TelephoneNumber.String())
	client.show("Date", f.Date.String())

	var details rows
	details.show("Units to Redeem (Figures)", p.amount(f.UnitsToRedeemFigures))
	details.show("Units to Redeem (Words)", f.UnitsToRedeemWords.String())

	var payment rows
	payment.show("Bank", f.Bank.String())
	payment.show("Branch", f.Branch.String())
	payment.show("Sort Code", f.SortCode.String())
	payment.show("Account Number", f.AccountNumber.String())
	payment.show("Account Name", f.AccountName.String())

	var certs rows
	certs.opt("Certificate Numbers", f.CertificateNumbers.String())
	certs.opt("Total Units", p.amount(f.TotalUnits))
	certs.opt("Previous Redemption", p.amount(f.PreviousRedemption))
	certs.opt("Balance", p.amount(f.Balance))
	certs.opt("Current Redemption", p.amount(f.CurrentRedemption))

	var sigs rows
	sigs.show("Primary Signature", provided(f.PrimarySignature))
	sigs.opt("Joint Signature", provided(f.JointSignature))

	var out []notification.Section
	out = appendSection(out, "Client Information", client)
	out = appendSection(out, "Redemption Details", details)
	out = appendSection(out, "Payment Details", payment)
	out = appendSection(out, "Unit Certificate Details", certs)
	out = appendSection(out, "Signatures", sigs)
	return out
}

func (f *RedemptionForm) summary(p *printer) rows {
	units := p.amount(f.UnitsToRedeemFigures)
	if w := f.UnitsToRedeemWords.String(); w != "" {
		units += " (" + w + ")"
	}

	var r rows
	r.opt("Units to Redeem", units)
	r.opt("Payment Account", f.AccountName.String())
	r.opt("Bank", f.Bank.String())
	r.opt("Account Number", f.AccountNumber.String())
	r.opt("Client ID", f.ClientID.String())
	return r
}

func (f *RedemptionForm) confirmations() []Recipient {
	name := f.FullName.String()
	out := []Recipient{{Role: RolePrimary, Email: f.Email.String(), Name: name}}
	if u := f.UserEmail.String(); u != "" && !sameAddress(u, f.Email.String()) {
		out = append(out, Recipient{Role: RoleCopy, Email: u, Name: name})
	}
	return out
}

func (f *RedemptionForm) identifier() string { return f.ClientID.String() }

func (f *RedemptionForm) contactEmail() string { return f.Email.String() }
