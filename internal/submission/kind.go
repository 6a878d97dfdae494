package submission

// Kind identifies a form. Its value is the URL slug of the form's routes.
type Kind string

const (
	KindRedemption          Kind = "redemption"
	KindCorporateInvestment Kind = "corporate-investment"
	KindMutualFund          Kind = "mutual-fund"
	KindEmailIndemnity      Kind = "email-indemnity"
	KindEquityFund          Kind = "equity-fund"
	KindEurobondFund        Kind = "eurobond-fund"
	KindMoneyMarketFund     Kind = "money-market-fund"
	KindFixedIncomeFund     Kind = "fixed-income-fund"
)

var allKinds = []Kind{
	KindRedemption,
	KindCorporateInvestment,
	KindMutualFund,
	KindEmailIndemnity,
	KindEquityFund,
	KindEurobondFund,
	KindMoneyMarketFund,
	KindFixedIncomeFund,
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind maps a slug to a Kind.
func ParseKind(slug string) (Kind, bool) {
	for _, k := range allKinds {
		if string(k) == slug {
			return k, true
		}
	}
	return "", false
}

func (k Kind) String() string { return string(k) }

// isFundRedemption reports whether k uses the shared fund redemption form.
func (k Kind) isFundRedemption() bool {
	switch k {
	case KindEquityFund, KindEurobondFund, KindMoneyMarketFund, KindFixedIncomeFund:
		return true
	}
	return false
}
