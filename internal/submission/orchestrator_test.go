package submission_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/internal/submission"
	"github.com/pacam/formrelay/pkg/mailer"
)

type dispatcherMock struct {
	mock.Mock
}

func (m *dispatcherMock) Dispatch(ctx context.Context, email *mailer.Email) mailer.Outcome {
	args := m.Called(ctx, email)
	return args.Get(0).(mailer.Outcome)
}

func to(addr string) any {
	return mock.MatchedBy(func(e *mailer.Email) bool { return len(e.To) == 1 && e.To[0] == addr })
}

func TestOrchestrator_Submit_Redemption(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := newOrchestrator(t, rec)

	res, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, redemptionData()))
	require.NoError(t, err)

	assert.Equal(t, "PACAM-REDEMPTION-1700000000000", res.ReferenceID)
	assert.Equal(t, "Redemption form submitted successfully", res.Message)
	require.Len(t, res.Deliveries, 2)
	assert.Equal(t, submission.RoleAdmin, res.Deliveries[0].Role)
	assert.Equal(t, submission.RolePrimary, res.Deliveries[1].Role)
	assert.Equal(t, "msg-client@x.com", res.Deliveries[1].Outcome.MessageID)

	sent := rec.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"fm@pacam.com"}, sent[0].To)
	assert.Equal(t, []string{"client@x.com"}, sent[1].To)
	for _, e := range sent {
		assert.Contains(t, e.HTML, res.ReferenceID)
		assert.Contains(t, e.Text, res.ReferenceID)
		require.NotEmpty(t, e.Attachments)
		assert.Equal(t, "PACAM_Redemption_C-001_1700000000000.pdf", e.Attachments[0].Filename)
	}
	assert.Equal(t, "PACAM Fund Redemption Form Submission", sent[0].Subject)
	assert.Equal(t, "PACAM Fund Redemption - Submission Confirmation", sent[1].Subject)
	assert.Equal(t, mailer.Tags{"kind": "redemption", "role": "admin"}, sent[0].Tags)
}

func TestOrchestrator_Submit_CopyRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userEmail string
		want      []string
	}{
		{"distinct copy", "agent@x.com", []string{"agent@x.com", "client@x.com"}},
		{"same address", "CLIENT@x.com", []string{"client@x.com"}},
		{"blank", "  ", []string{"client@x.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			o := newOrchestrator(t, rec)

			data := redemptionData()
			data["userEmail"] = tt.userEmail
			_, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, data))
			require.NoError(t, err)

			var got []string
			for _, e := range rec.clients() {
				got = append(got, e.To[0])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_Submit_MutualFundJoint(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := newOrchestrator(t, rec)

	env := &submission.Envelope{
		FormData:   mustJSON(t, mutualFundData(true)),
		PDFContent: samplePDF,
		AdminEmail: "ops@pacam.com",
	}
	res, err := o.Submit(context.Background(), submission.KindMutualFund, env)
	require.NoError(t, err)
	assert.Equal(t, "PACAM-MF-1700000000000", res.ReferenceID)
	require.Len(t, res.Deliveries, 3)
	assert.Equal(t, submission.RoleJoint, res.Deliveries[2].Role)

	sent := rec.sent()
	require.Len(t, sent, 3)
	assert.Equal(t, []string{"ops@pacam.com"}, sent[0].To)

	clients := rec.clients()
	require.Len(t, clients, 2)
	assert.Equal(t, []string{"jane@x.com"}, clients[0].To)
	assert.Equal(t, []string{"john@x.com"}, clients[1].To)
	assert.Contains(t, clients[0].Text, "Dear Doe Jane,")
	assert.Contains(t, clients[1].Text, "Dear Doe John,")
	assert.NotEqual(t, clients[0].HTML, clients[1].HTML)
	for _, e := range sent {
		assert.Contains(t, e.HTML, "PACAM-MF-1700000000000")
	}
	assert.Contains(t, clients[1].Text, "joint account")
}

func TestOrchestrator_Submit_MutualFundIndividual(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := newOrchestrator(t, rec)

	data := mutualFundData(false)
	data["jointApplicant"] = map[string]any{"surname": "Doe", "name": "John", "emailAddress": "john@x.com"}
	env := &submission.Envelope{FormData: mustJSON(t, data), PDFContent: samplePDF, AdminEmail: "ops@pacam.com"}

	_, err := o.Submit(context.Background(), submission.KindMutualFund, env)
	require.NoError(t, err)
	assert.Len(t, rec.sent(), 2)
}

func TestOrchestrator_Submit_AdminFailureStopsPipeline(t *testing.T) {
	t.Parallel()

	d := &dispatcherMock{}
	d.On("Dispatch", mock.Anything, to("fm@pacam.com")).
		Return(mailer.Outcome{FailureReason: "provider unavailable"}).Once()
	o := newOrchestrator(t, d)

	res, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, redemptionData()))
	require.Error(t, err)
	assert.Nil(t, res)

	var de *submission.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, submission.RoleAdmin, de.Role)
	assert.Equal(t, "provider unavailable", de.Reason)

	d.AssertNumberOfCalls(t, "Dispatch", 1)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, to("client@x.com"))
	d.AssertExpectations(t)
}

func TestOrchestrator_Submit_ClientFailuresAreIndependent(t *testing.T) {
	t.Parallel()

	d := &dispatcherMock{}
	d.On("Dispatch", mock.Anything, to("fm@pacam.com")).Return(mailer.Outcome{Delivered: true, MessageID: "1"}).Once()
	d.On("Dispatch", mock.Anything, to("client@x.com")).Return(mailer.Outcome{FailureReason: "mailbox full"}).Once()
	d.On("Dispatch", mock.Anything, to("agent@x.com")).Return(mailer.Outcome{Delivered: true, MessageID: "3"}).Once()
	o := newOrchestrator(t, d)

	data := redemptionData()
	data["userEmail"] = "agent@x.com"
	_, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, data))

	var de *submission.DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, submission.RolePrimary, de.Role)
	assert.Equal(t, "client@x.com", de.Recipient)
	assert.True(t, submission.IsDispatch(err))

	d.AssertNumberOfCalls(t, "Dispatch", 3)
	d.AssertExpectations(t)
}

func TestOrchestrator_Submit_StructuralErrorSendsNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  *submission.Envelope
	}{
		{"empty", &submission.Envelope{}},
		{"no pdf", &submission.Envelope{FormData: []byte(`{"fullName":"x"}`), FundManagerEmail: "fm@pacam.com"}},
		{"no admin", &submission.Envelope{FormData: []byte(`{"fullName":"x"}`), PDFContent: samplePDF}},
		{"no form", &submission.Envelope{PDFContent: samplePDF, FundManagerEmail: "fm@pacam.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := &dispatcherMock{}
			o := newOrchestrator(t, d)

			_, err := o.Submit(context.Background(), submission.KindRedemption, tt.env)
			assert.True(t, submission.IsStructural(err), err)
			d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}
}

func TestOrchestrator_Submit_ValidationErrorSendsNothing(t *testing.T) {
	t.Parallel()

	d := &dispatcherMock{}
	o := newOrchestrator(t, d)

	data := redemptionData()
	delete(data, "fullName")
	delete(data, "bank")
	data["email"] = "not-an-email"

	_, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, data))
	ve, ok := submission.AsValidation(err)
	require.True(t, ok, err)
	assert.Equal(t, []string{"fullName is required", "bank is required", "Invalid email format"}, ve.Errors)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestOrchestrator_Submit_MistypedFieldKeepsOtherErrors(t *testing.T) {
	t.Parallel()

	d := &dispatcherMock{}
	o := newOrchestrator(t, d)

	data := redemptionData()
	data["clientId"] = map[string]any{"x": 1}
	delete(data, "bank")
	delete(data, "branch")
	data["email"] = "ab.com"

	_, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, data))
	ve, ok := submission.AsValidation(err)
	require.True(t, ok, err)
	assert.Equal(t, []string{
		"clientId has an invalid value",
		"bank is required",
		"branch is required",
		"Invalid email format",
	}, ve.Errors)
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestOrchestrator_Submit_UnknownKind(t *testing.T) {
	t.Parallel()

	o := newOrchestrator(t, &recorder{})
	_, err := o.Submit(context.Background(), "pension", &submission.Envelope{})
	assert.ErrorIs(t, err, submission.ErrUnknownKind)
}

func TestOrchestrator_Submit_AdminDomains(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := newOrchestrator(t, rec, submission.WithAdminDomains("@PACAM.com", " "))

	_, err := o.Submit(context.Background(), submission.KindRedemption, redemptionEnvelope(t, redemptionData()))
	require.NoError(t, err)

	env := redemptionEnvelope(t, redemptionData())
	env.FundManagerEmail = "fm@elsewhere.com"
	_, err = o.Submit(context.Background(), submission.KindRedemption, env)
	var se *submission.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "fundManagerEmail is not an allowed recipient", se.Message)
	assert.Len(t, rec.sent(), 2)
}

func TestOrchestrator_Submit_UniqueReferences(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	o := newOrchestrator(t, rec, submission.WithUniqueReferences(true))

	a, err := o.Submit(context.Background(), submission.KindEquityFund, equityEnvelope(t))
	require.NoError(t, err)
	b, err := o.Submit(context.Background(), submission.KindEquityFund, equityEnvelope(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.ReferenceID, "PACAM-EQUITY-1700000000000-"), a.ReferenceID)
	assert.NotEqual(t, a.ReferenceID, b.ReferenceID)
}

func TestOrchestrator_Submit_SameInstantCollides(t *testing.T) {
	t.Parallel()

	o := newOrchestrator(t, &recorder{})

	a, err := o.Submit(context.Background(), submission.KindEquityFund, equityEnvelope(t))
	require.NoError(t, err)
	b, err := o.Submit(context.Background(), submission.KindEquityFund, equityEnvelope(t))
	require.NoError(t, err)
	assert.Equal(t, a.ReferenceID, b.ReferenceID)
}

func TestOrchestrator_ValidateForm(t *testing.T) {
	t.Parallel()

	o := newOrchestrator(t, &recorder{})

	res, err := o.ValidateForm(submission.KindEmailIndemnity, mustJSON(t, indemnityData()))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = o.ValidateForm(submission.KindEmailIndemnity, []byte(`{"preferredEmail":["x"]}`))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"preferredEmail has an invalid value",
		"accountHolderName is required",
		"signature is required",
		"Agreement to terms is required",
	}, res.Errors)

	_, err = o.ValidateForm(submission.KindEmailIndemnity, nil)
	assert.True(t, submission.IsStructural(err))

	_, err = o.ValidateForm("pension", []byte(`{}`))
	assert.ErrorIs(t, err, submission.ErrUnknownKind)
}

func equityEnvelope(t *testing.T) *submission.Envelope {
	t.Helper()
	return &submission.Envelope{
		FormData:   mustJSON(t, redemptionData()),
		PDFContent: samplePDF,
		AdminEmail: "equity@pacam.com",
	}
}
