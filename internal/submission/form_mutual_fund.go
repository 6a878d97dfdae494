package submission

import (
	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/validator"
)

// Applicant is a mutual fund account holder.
type Applicant struct {
	Surname            Text `json:"surname"`
	Name               Text `json:"name"`
	OtherName          Text `json:"otherName"`
	ResidentialAddress Text `json:"residentialAddress"`
	Nationality        Text `json:"nationality"`
	DateOfBirth        Text `json:"dateOfBirth"`
	Occupation         Text `json:"occupation"`
	Gender             Text `json:"gender"`
	StateOfOrigin      Text `json:"stateOfOrigin"`
	TownCity           Text `json:"townCity"`
	MobileNumber       Text `json:"mobileNumber"`
	EmailAddress       Text `json:"emailAddress"`
	TaxID              Text `json:"taxId"`
	IDType             Text `json:"idType"`
	IDNumber           Text `json:"idNumber"`
	IDIssuedDate       Text `json:"idIssuedDate"`
	IDExpiryDate       Text `json:"idExpiryDate"`
	BVN                Text `json:"bvn"`
	AccountName        Text `json:"accountName"`
	AccountNumber      Text `json:"accountNumber"`
	BankName           Text `json:"bankName"`
	Signature          Text `json:"signature"`
	SignatureDate      Text `json:"signatureDate"`
}

// FullName is surname then given names.
func (a *Applicant) FullName() string {
	return joinName(a.Surname, a.Name, a.OtherName)
}

// MinorInvestment describes the minor an account is opened for.
type MinorInvestment struct {
	IsForMinor              Flag `json:"isForMinor"`
	Surname                 Text `json:"surname"`
	Name                    Text `json:"name"`
	OtherName               Text `json:"otherName"`
	ResidentialAddress      Text `json:"residentialAddress"`
	Nationality             Text `json:"nationality"`
	StateOfOrigin           Text `json:"stateOfOrigin"`
	Relationship            Text `json:"relationship"`
	MobileNumber            Text `json:"mobileNumber"`
	DateOfBirth             Text `json:"dateOfBirth"`
	RelationshipToApplicant Text `json:"relationshipToApplicant"`
	EmailAddress            Text `json:"emailAddress"`
}

// NextOfKin is the applicant's next of kin.
type NextOfKin struct {
	Surname            Text `json:"surname"`
	Name               Text `json:"name"`
	OtherName          Text `json:"otherName"`
	ResidentialAddress Text `json:"residentialAddress"`
	Nationality        Text `json:"nationality"`
	StateOfOrigin      Text `json:"stateOfOrigin"`
	Relationship       Text `json:"relationship"`
	MobileNumber       Text `json:"mobileNumber"`
	EmailAddress       Text `json:"emailAddress"`
}

// MutualFundForm is an individual or joint mutual fund application.
type MutualFundForm struct {
	typeIssues

	FundType                  Text             `json:"fundType"`
	DividendMandate           Text             `json:"dividendMandate"`
	InvestmentValue           Text             `json:"investmentValue"`
	InvestorType              Text             `json:"investorType"`
	IsJointAccount            Flag             `json:"isJointAccount"`
	PrimaryApplicant          *Applicant       `json:"primaryApplicant"`
	JointApplicant            *Applicant       `json:"jointApplicant"`
	MinorInvestment           *MinorInvestment `json:"minorInvestment"`
	NextOfKin                 *NextOfKin       `json:"nextOfKin"`
	IsPEP                     Text             `json:"isPep"`
	PEPDetails                Text             `json:"pepDetails"`
	IsFinanciallyExposed      Text             `json:"isFinanciallyExposed"`
	FinanciallyExposedDetails Text             `json:"financiallyExposedDetails"`
	InvestorDomicile          Text             `json:"investorDomicile"`
	AgreedToTerms             Flag             `json:"agreedToTerms"`
	AgreedToRisks             Flag             `json:"agreedToRisks"`
}

func (f *MutualFundForm) joint() bool { return f.IsJointAccount.True() }

func (f *MutualFundForm) rules() []validator.Rule {
	rs := required(
		field{"fundType", f.FundType},
		field{"investmentValue", f.InvestmentValue},
		field{"investorType", f.InvestorType},
		field{"isPep", f.IsPEP},
		field{"isFinanciallyExposed", f.IsFinanciallyExposed},
	)

	if a := f.PrimaryApplicant; a == nil {
		rs = append(rs, validator.Required("primaryApplicant", false).
			WithMessage("Primary applicant information is required"))
	} else {
		rs = append(rs,
			validator.RequiredString("primaryApplicant.surname", string(a.Surname)).WithMessage("Primary applicant surname is required"),
			validator.RequiredString("primaryApplicant.name", string(a.Name)).WithMessage("Primary applicant name is required"),
			validator.RequiredString("primaryApplicant.emailAddress", string(a.EmailAddress)).WithMessage("Primary applicant email is required"),
			validator.RequiredString("primaryApplicant.signature", string(a.Signature)).WithMessage("Primary applicant signature is required"),
			validator.RequiredString("primaryApplicant.signatureDate", string(a.SignatureDate)).WithMessage("Primary applicant signature date is required"),
		)
	}

	if f.joint() {
		if a := f.JointApplicant; a == nil {
			rs = append(rs, validator.Required("jointApplicant", false).
				WithMessage("Joint applicant information is required for joint accounts"))
		} else {
			rs = append(rs,
				validator.RequiredString("jointApplicant.surname", string(a.Surname)).WithMessage("Joint applicant surname is required"),
				validator.RequiredString("jointApplicant.name", string(a.Name)).WithMessage("Joint applicant name is required"),
				validator.RequiredString("jointApplicant.signature", string(a.Signature)).WithMessage("Joint applicant signature is required"),
				validator.RequiredString("jointApplicant.signatureDate", string(a.SignatureDate)).WithMessage("Joint applicant signature date is required"),
			)
		}
	}

	if a := f.PrimaryApplicant; a != nil {
		rs = append(rs, emailIfPresent("primaryApplicant.emailAddress", a.EmailAddress, "Invalid primary applicant email format")...)
	}
	if a := f.JointApplicant; a != nil {
		rs = append(rs, emailIfPresent("jointApplicant.emailAddress", a.EmailAddress, "Invalid joint applicant email format")...)
	}

	return append(rs,
		consent("agreedToTerms", f.AgreedToTerms, "Agreement to terms is required"),
		consent("agreedToRisks", f.AgreedToRisks, "Agreement to risks is required"),
	)
}

func (f *MutualFundForm) accountType() string {
	if f.joint() {
		return "Joint Account"
	}
	return "Individual Account"
}

func applicantRows(p *printer, a *Applicant) rows {
	var r rows
	r.show("Full Name", a.FullName())
	r.show("Email Address", a.EmailAddress.String())
	r.opt("Mobile Number", a.MobileNumber.String())
	r.opt("Residential Address", a.ResidentialAddress.String())
	r.opt("Town/City", a.TownCity.String())
	r.opt("State of Origin", a.StateOfOrigin.String())
	r.opt("Nationality", a.Nationality.String())
	r.opt("Date of Birth", a.DateOfBirth.String())
	r.opt("Gender", p.choice(a.Gender))
	r.opt("Occupation", a.Occupation.String())
	r.opt("BVN", a.BVN.String())
	r.opt("Tax ID", a.TaxID.String())
	r.opt("ID Type", p.choice(a.IDType))
	r.opt("ID Number", a.IDNumber.String())
	r.opt("ID Issued Date", a.IDIssuedDate.String())
	r.opt("ID Expiry Date", a.IDExpiryDate.String())
	r.show("Signature", provided(a.Signature))
	r.opt("Signature Date", a.SignatureDate.String())
	return r
}

func (f *MutualFundForm) adminSections(p *printer) []notification.Section {
	var investment rows
	investment.show("Fund Type", p.choice(f.FundType))
	investment.show("Investment Value", p.amount(f.InvestmentValue))
	investment.opt("Dividend Mandate", p.choice(f.DividendMandate))
	investment.show("Investor Type", p.choice(f.InvestorType))
	investment.show("Account Type", f.accountType())

	var out []notification.Section
	out = appendSection(out, "Investment Information", investment)

	if f.PrimaryApplicant != nil {
		out = appendSection(out, "Primary Applicant Information", applicantRows(p, f.PrimaryApplicant))
	}
	if f.joint() && f.JointApplicant != nil {
		out = appendSection(out, "Joint Applicant Information", applicantRows(p, f.JointApplicant))
	}

	if m := f.MinorInvestment; m != nil && m.IsForMinor.True() {
		var r rows
		r.show("Full Name", joinName(m.Surname, m.Name, m.OtherName))
		r.opt("Date of Birth", m.DateOfBirth.String())
		r.opt("Relationship to Applicant", m.RelationshipToApplicant.String())
		r.opt("Relationship", m.Relationship.String())
		r.opt("Residential Address", m.ResidentialAddress.String())
		r.opt("Nationality", m.Nationality.String())
		r.opt("State of Origin", m.StateOfOrigin.String())
		r.opt("Mobile Number", m.MobileNumber.String())
		r.opt("Email Address", m.EmailAddress.String())
		out = appendSection(out, "Minor Investment Details", r)
	}

	if k := f.NextOfKin; k != nil {
		var r rows
		r.opt("Full Name", joinName(k.Surname, k.Name, k.OtherName))
		r.opt("Relationship", k.Relationship.String())
		r.opt("Residential Address", k.ResidentialAddress.String())
		r.opt("Nationality", k.Nationality.String())
		r.opt("State of Origin", k.StateOfOrigin.String())
		r.opt("Mobile Number", k.MobileNumber.String())
		r.opt("Email Address", k.EmailAddress.String())
		out = appendSection(out, "Next of Kin", r)
	}

	if a := f.PrimaryApplicant; a != nil {
		var banking rows
		banking.opt("Account Name", a.AccountName.String())
		banking.opt("Account Number", a.AccountNumber.String())
		banking.opt("Bank Name", a.BankName.String())
		out = appendSection(out, "Banking Information", banking)
	}

	var compliance rows
	compliance.show("Politically Exposed Person", p.yesNo(f.IsPEP))
	compliance.opt("PEP Details", f.PEPDetails.String())
	compliance.show("Financially Exposed", p.yesNo(f.IsFinanciallyExposed))
	compliance.opt("Financial Exposure Details", f.FinanciallyExposedDetails.String())
	compliance.opt("Investor Domicile", p.choice(f.InvestorDomicile))
	compliance.show("Agreed to Terms", p.flag(f.AgreedToTerms))
	compliance.show("Agreed to Risks", p.flag(f.AgreedToRisks))
	return appendSection(out, "Compliance Information", compliance)
}

func (f *MutualFundForm) summary(p *printer) rows {
	var r rows
	r.opt("Fund Type", p.choice(f.FundType))
	r.opt("Investment Value", p.amount(f.InvestmentValue))
	r.opt("Account Type", f.accountType())
	r.opt("Dividend Mandate", p.choice(f.DividendMandate))
	return r
}

// confirmations greets each applicant by their own name. The joint applicant
// is included only for joint accounts with a distinct address.
func (f *MutualFundForm) confirmations() []Recipient {
	var out []Recipient
	p := f.PrimaryApplicant
	if p != nil {
		out = append(out, Recipient{
			Role:  RolePrimary,
			Email: p.EmailAddress.String(),
			Name:  joinName(p.Surname, p.Name),
		})
	}
	if j := f.JointApplicant; f.joint() && j != nil && !j.EmailAddress.Empty() {
		if p == nil || !sameAddress(j.EmailAddress.String(), p.EmailAddress.String()) {
			out = append(out, Recipient{
				Role:  RoleJoint,
				Email: j.EmailAddress.String(),
				Name:  joinName(j.Surname, j.Name),
			})
		}
	}
	return out
}

func (f *MutualFundForm) identifier() string {
	if f.PrimaryApplicant == nil {
		return ""
	}
	return joinName(f.PrimaryApplicant.Surname, f.PrimaryApplicant.Name)
}

func (f *MutualFundForm) contactEmail() string {
	if f.PrimaryApplicant == nil {
		return ""
	}
	return f.PrimaryApplicant.EmailAddress.String()
}
