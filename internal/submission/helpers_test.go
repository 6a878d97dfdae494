package submission_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/internal/submission"
	"github.com/pacam/formrelay/pkg/mailer"
)

var fixedNow = time.UnixMilli(1700000000000).UTC()

var samplePDF = base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 sample"))

// recorder is a Dispatcher that remembers every email and fails for the
// addresses listed in fail.
type recorder struct {
	mu     sync.Mutex
	emails []*mailer.Email
	fail   map[string]string
}

func (r *recorder) Dispatch(_ context.Context, email *mailer.Email) mailer.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, email)
	if reason, ok := r.fail[email.To[0]]; ok {
		return mailer.Outcome{FailureReason: reason}
	}
	return mailer.Outcome{Delivered: true, MessageID: "msg-" + email.To[0]}
}

func (r *recorder) sent() []*mailer.Email {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*mailer.Email, len(r.emails))
	copy(out, r.emails)
	return out
}

// clients returns every email after the admin notice, sorted by recipient.
func (r *recorder) clients() []*mailer.Email {
	all := r.sent()
	if len(all) < 2 {
		return nil
	}
	out := all[1:]
	sort.Slice(out, func(i, j int) bool { return out[i].To[0] < out[j].To[0] })
	return out
}

func newOrchestrator(t *testing.T, d submission.Dispatcher, opts ...submission.Option) *submission.Orchestrator {
	t.Helper()
	catalog, err := submission.DefaultCatalog()
	require.NoError(t, err)
	renderer, err := notification.NewRenderer()
	require.NoError(t, err)
	opts = append([]submission.Option{submission.WithClock(func() time.Time { return fixedNow })}, opts...)
	return submission.NewOrchestrator(catalog, renderer, d, opts...)
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func redemptionData() map[string]any {
	return map[string]any{
		"fullName":             "Jane Doe",
		"clientId":             "C-001",
		"email":                "client@x.com",
		"telephoneNumber":      "08030000000",
		"unitsToRedeemFigures": "1000",
		"unitsToRedeemWords":   "One thousand",
		"bank":                 "First Bank",
		"branch":               "Marina",
		"sortCode":             "011",
		"accountNumber":        "0123456789",
		"accountName":          "Jane Doe",
	}
}

func redemptionEnvelope(t *testing.T, data map[string]any) *submission.Envelope {
	t.Helper()
	return &submission.Envelope{
		FormData:         mustJSON(t, data),
		PDFContent:       samplePDF,
		FundManagerEmail: "fm@pacam.com",
	}
}

func mutualFundData(joint bool) map[string]any {
	data := map[string]any{
		"fundType":             "pacam_money_market",
		"investmentValue":      "250000",
		"investorType":         "individual",
		"isJointAccount":       joint,
		"isPep":                "no",
		"isFinanciallyExposed": "no",
		"agreedToTerms":        true,
		"agreedToRisks":        true,
		"primaryApplicant": map[string]any{
			"surname":       "Doe",
			"name":          "Jane",
			"emailAddress":  "jane@x.com",
			"signature":     "data:image/png;base64,AAAA",
			"signatureDate": "2025-01-10",
		},
	}
	if joint {
		data["jointApplicant"] = map[string]any{
			"surname":       "Doe",
			"name":          "John",
			"emailAddress":  "john@x.com",
			"signature":     "data:image/png;base64,BBBB",
			"signatureDate": "2025-01-10",
		}
	}
	return data
}

func indemnityData() map[string]any {
	return map[string]any{
		"preferredEmail":    "holder@x.com",
		"accountHolderName": "Jane Doe",
		"signature":         "data:image/png;base64,AAAA",
		"agreedToTerms":     true,
	}
}

func corporateData() map[string]any {
	return map[string]any{
		"investmentType":       "fixed_deposit",
		"investmentValue":      "5000000",
		"investorType":         "corporate",
		"companyName":          "Acme Ltd",
		"emailAddress":         "ops@acme.com",
		"cacNumber":            "RC123456",
		"isPep":                "no",
		"isFinanciallyExposed": "no",
		"agreedToTerms":        true,
		"agreedToRisks":        true,
		"signatories": []map[string]any{
			{"surname": "Obi", "name": "Ada", "emailAddress": "ada@acme.com"},
		},
	}
}
