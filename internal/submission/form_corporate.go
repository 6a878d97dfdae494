package submission

import (
	"fmt"
	"strconv"

	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/validator"
)

// Signatory is an authorised signatory of a corporate account.
type Signatory struct {
	Surname            Text `json:"surname"`
	Name               Text `json:"name"`
	OtherName          Text `json:"otherName"`
	ResidentialAddress Text `json:"residentialAddress"`
	Nationality        Text `json:"nationality"`
	StateOfOrigin      Text `json:"stateOfOrigin"`
	DateOfBirth        Text `json:"dateOfBirth"`
	Gender             Text `json:"gender"`
	EmploymentDetails  Text `json:"employmentDetails"`
	TownCity           Text `json:"townCity"`
	BVN                Text `json:"bvn"`
	EmailAddress       Text `json:"emailAddress"`
	MobileNumber       Text `json:"mobileNumber"`
	TaxID              Text `json:"taxId"`
	SignatureDate      Text `json:"signatureDate"`
	IDType             Text `json:"idType"`
	IDNumber           Text `json:"idNumber"`
	IDIssuedDate       Text `json:"idIssuedDate"`
	IDExpiryDate       Text `json:"idExpiryDate"`
}

// CorporateInvestmentForm is a company's investment account application.
type CorporateInvestmentForm struct {
	typeIssues

	InvestmentType            Text        `json:"investmentType"`
	InvestmentValue           Text        `json:"investmentValue"`
	Tenor                     Text        `json:"tenor"`
	OtherTenor                Text        `json:"otherTenor"`
	InvestorType              Text        `json:"investorType"`
	Date                      Text        `json:"date"`
	CACNumber                 Text        `json:"cacNumber"`
	TypeOfBusiness            Text        `json:"typeOfBusiness"`
	CompanyName               Text        `json:"companyName"`
	RegisteredAddress         Text        `json:"registeredAddress"`
	Country                   Text        `json:"country"`
	StateOfOrigin             Text        `json:"stateOfOrigin"`
	TownCity                  Text        `json:"townCity"`
	EmailAddress              Text        `json:"emailAddress"`
	PhoneNumber               Text        `json:"phoneNumber"`
	TaxID                     Text        `json:"taxId"`
	CompanySignatureDate      Text        `json:"companySignatureDate"`
	Signatories               []Signatory `json:"signatories"`
	IsPEP                     Text        `json:"isPep"`
	PEPDetails                Text        `json:"pepDetails"`
	IsFinanciallyExposed      Text        `json:"isFinanciallyExposed"`
	FinanciallyExposedDetails Text        `json:"financiallyExposedDetails"`
	AccountName               Text        `json:"accountName"`
	AccountNumber             Text        `json:"accountNumber"`
	BankName                  Text        `json:"bankName"`
	InvestorDomicile          Text        `json:"investorDomicile"`
	AgreedToTerms             Flag        `json:"agreedToTerms"`
	AgreedToRisks             Flag        `json:"agreedToRisks"`
	UserEmail                 Text        `json:"userEmail"`
}

func (f *CorporateInvestmentForm) rules() []validator.Rule {
	rs := required(
		field{"investmentType", f.InvestmentType},
		field{"investmentValue", f.InvestmentValue},
		field{"investorType", f.InvestorType},
		field{"companyName", f.CompanyName},
		field{"emailAddress", f.EmailAddress},
		field{"cacNumber", f.CACNumber},
		field{"isPep", f.IsPEP},
		field{"isFinanciallyExposed", f.IsFinanciallyExposed},
	)
	rs = append(rs, emailIfPresent("emailAddress", f.EmailAddress, "Invalid email format")...)
	rs = append(rs, emailIfPresent("userEmail", f.UserEmail, "Invalid user email format")...)

	rs = append(rs, validator.RequiredSlice("signatories", f.Signatories).
		WithMessage("At least one signatory is required"))
	rs = append(rs, validator.Each(f.Signatories, func(i int, s Signatory) []validator.Rule {
		name := "signatories[" + strconv.Itoa(i) + "]"
		out := []validator.Rule{
			validator.Required(name, !s.Surname.Empty() && !s.Name.Empty()).
				WithMessage(fmt.Sprintf("Signatory %d: surname and name are required", i+1)),
		}
		return append(out, emailIfPresent(name+".emailAddress", s.EmailAddress,
			fmt.Sprintf("Signatory %d: invalid email format", i+1))...)
	})...)

	return append(rs,
		consent("agreedToTerms", f.AgreedToTerms, "Agreement to terms is required"),
		consent("agreedToRisks", f.AgreedToRisks, "Agreement to risks is required"),
	)
}

func (f *CorporateInvestmentForm) tenor() string {
	if t := f.OtherTenor.String(); t != "" && (f.Tenor.Empty() || f.Tenor.String() == "other") {
		return t
	}
	return f.Tenor.String()
}

func (f *CorporateInvestmentForm) adminSections(p *printer) []notification.Section {
	var investment rows
	investment.show("Investment Type", p.choice(f.InvestmentType))
	investment.show("Investment Value", p.amount(f.InvestmentValue))
	investment.opt("Tenor", f.tenor())
	investment.show("Investor Type", p.choice(f.InvestorType))

	var company rows
	company.show("Company Name", f.CompanyName.String())
	company.show("CAC Number", f.CACNumber.String())
	company.opt("Type of Business", f.TypeOfBusiness.String())
	company.opt("Registered Address", f.RegisteredAddress.String())
	company.opt("Country", f.Country.String())
	company.opt("State of Origin", f.StateOfOrigin.String())
	company.opt("Town/City", f.TownCity.String())
	company.show("Email Address", f.EmailAddress.String())
	company.opt("Phone Number", f.PhoneNumber.String())
	company.opt("Tax ID", f.TaxID.String())
	company.opt("Date", f.Date.String())
	company.opt("Company Signature Date", f.CompanySignatureDate.String())

	var out []notification.Section
	out = appendSection(out, "Investment Information", investment)
	out = appendSection(out, "Company Information", company)

	for i, s := range f.Signatories {
		var r rows
		r.show("Full Name", joinName(s.Surname, s.Name, s.OtherName))
		r.opt("Residential Address", s.ResidentialAddress.String())
		r.opt("Nationality", s.Nationality.String())
		r.opt("State of Origin", s.StateOfOrigin.String())
		r.opt("Date of Birth", s.DateOfBirth.String())
		r.opt("Gender", p.choice(s.Gender))
		r.opt("Employment Details", s.EmploymentDetails.String())
		r.opt("Town/City", s.TownCity.String())
		r.opt("BVN", s.BVN.String())
		r.opt("Email Address", s.EmailAddress.String())
		r.opt("Mobile Number", s.MobileNumber.String())
		r.opt("Tax ID", s.TaxID.String())
		r.opt("ID Type", p.choice(s.IDType))
		r.opt("ID Number", s.IDNumber.String())
		r.opt("ID Issued Date", s.IDIssuedDate.String())
		r.opt("ID Expiry Date", s.IDExpiryDate.String())
		r.opt("Signature Date", s.SignatureDate.String())
		out = appendSection(out, fmt.Sprintf("Account Signatory %d of %d", i+1, len(f.Signatories)), r)
	}

	var compliance rows
	compliance.show("Politically Exposed Person", p.yesNo(f.IsPEP))
	compliance.opt("PEP Details", f.PEPDetails.String())
	compliance.show("Financially Exposed", p.yesNo(f.IsFinanciallyExposed))
	compliance.opt("Financial Exposure Details", f.FinanciallyExposedDetails.String())
	compliance.opt("Investor Domicile", p.choice(f.InvestorDomicile))
	compliance.show("Agreed to Terms", p.flag(f.AgreedToTerms))
	compliance.show("Agreed to Risks", p.flag(f.AgreedToRisks))
	out = appendSection(out, "Compliance Information", compliance)

	var banking rows
	banking.opt("Account Name", f.AccountName.String())
	banking.opt("Account Number", f.AccountNumber.String())
	banking.opt("Bank Name", f.BankName.String())
	return appendSection(out, "Banking Information", banking)
}

func (f *CorporateInvestmentForm) summary(p *printer) rows {
	var r rows
	r.opt("Company Name", f.CompanyName.String())
	r.opt("Investment Type", p.choice(f.InvestmentType))
	r.opt("Investment Value", p.amount(f.InvestmentValue))
	r.opt("Investor Type", p.choice(f.InvestorType))
	r.opt("Signatories", strconv.Itoa(len(f.Signatories)))
	return r
}

func (f *CorporateInvestmentForm) confirmations() []Recipient {
	name := f.CompanyName.String() + " Team"
	out := []Recipient{{Role: RolePrimary, Email: f.EmailAddress.String(), Name: name}}
	if u := f.UserEmail.String(); u != "" && !sameAddress(u, f.EmailAddress.String()) {
		out = append(out, Recipient{Role: RoleCopy, Email: u, Name: name})
	}
	return out
}

func (f *CorporateInvestmentForm) identifier() string { return f.CompanyName.String() }

func (f *CorporateInvestmentForm) contactEmail() string { return f.EmailAddress.String() }
