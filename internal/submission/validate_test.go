package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/internal/submission"
)

func validate(t *testing.T, kind submission.Kind, data map[string]any) submission.ValidationResult {
	t.Helper()
	form, err := submission.DecodeForm(kind, mustJSON(t, data))
	require.NoError(t, err)
	return submission.Validate(form)
}

func TestValidate_ValidForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind submission.Kind
		data map[string]any
	}{
		{submission.KindRedemption, redemptionData()},
		{submission.KindEquityFund, redemptionData()},
		{submission.KindFixedIncomeFund, redemptionData()},
		{submission.KindMutualFund, mutualFundData(false)},
		{submission.KindMutualFund, mutualFundData(true)},
		{submission.KindEmailIndemnity, indemnityData()},
		{submission.KindCorporateInvestment, corporateData()},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			res := validate(t, tt.kind, tt.data)
			assert.True(t, res.Valid, res.Errors)
			assert.NotNil(t, res.Errors)
			assert.Empty(t, res.Errors)
			assert.NoError(t, res.Err())
		})
	}
}

func TestValidate_ReportsEveryMissingField(t *testing.T) {
	t.Parallel()

	data := redemptionData()
	delete(data, "bank")
	data["branch"] = "   "
	data["sortCode"] = nil

	res := validate(t, submission.KindRedemption, data)
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		"bank is required",
		"branch is required",
		"sortCode is required",
	}, res.Errors)

	var ve *submission.ValidationError
	require.ErrorAs(t, res.Err(), &ve)
	assert.Len(t, ve.Errors, 3)
}

func TestValidate_EmailFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  []string
	}{
		{"a@b.com", []string{}},
		{"a@b", []string{"Invalid email format"}},
		{"ab.com", []string{"Invalid email format"}},
		{"", []string{"email is required"}},
		{"a@@b.com", []string{"Invalid email format"}},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			data := redemptionData()
			data["email"] = tt.email
			res := validate(t, submission.KindRedemption, data)
			assert.Equal(t, tt.want, res.Errors)
			assert.Equal(t, len(tt.want) == 0, res.Valid)
		})
	}
}

func TestValidate_ConsentMustBeBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"boolean true", true, true},
		{"string true", "true", false},
		{"boolean false", false, false},
		{"number one", 1, false},
		{"missing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := indemnityData()
			data["agreedToTerms"] = tt.value
			res := validate(t, submission.KindEmailIndemnity, data)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, []string{"Agreement to terms is required"}, res.Errors)
			}
		})
	}
}

func TestValidate_MutualFund(t *testing.T) {
	t.Parallel()

	t.Run("joint applicant required for joint accounts", func(t *testing.T) {
		t.Parallel()
		data := mutualFundData(true)
		delete(data, "jointApplicant")
		res := validate(t, submission.KindMutualFund, data)
		assert.Equal(t, []string{"Joint applicant information is required for joint accounts"}, res.Errors)
	})

	t.Run("joint applicant ignored for individual accounts", func(t *testing.T) {
		t.Parallel()
		data := mutualFundData(false)
		data["jointApplicant"] = map[string]any{"surname": ""}
		res := validate(t, submission.KindMutualFund, data)
		assert.True(t, res.Valid, res.Errors)
	})

	t.Run("missing primary applicant", func(t *testing.T) {
		t.Parallel()
		data := mutualFundData(false)
		delete(data, "primaryApplicant")
		data["agreedToRisks"] = "yes"
		res := validate(t, submission.KindMutualFund, data)
		assert.Equal(t, []string{
			"Primary applicant information is required",
			"Agreement to risks is required",
		}, res.Errors)
	})

	t.Run("invalid joint email", func(t *testing.T) {
		t.Parallel()
		data := mutualFundData(true)
		data["jointApplicant"].(map[string]any)["emailAddress"] = "john@x"
		res := validate(t, submission.KindMutualFund, data)
		assert.Equal(t, []string{"Invalid joint applicant email format"}, res.Errors)
	})
}

func TestValidate_CorporateInvestment(t *testing.T) {
	t.Parallel()

	t.Run("no signatories", func(t *testing.T) {
		t.Parallel()
		data := corporateData()
		data["signatories"] = []any{}
		res := validate(t, submission.KindCorporateInvestment, data)
		assert.Equal(t, []string{"At least one signatory is required"}, res.Errors)
	})

	t.Run("signatory problems are numbered", func(t *testing.T) {
		t.Parallel()
		data := corporateData()
		data["signatories"] = []map[string]any{
			{"surname": "Obi", "name": "Ada"},
			{"surname": "Eze", "emailAddress": "bad"},
		}
		res := validate(t, submission.KindCorporateInvestment, data)
		assert.Equal(t, []string{
			"Signatory 2: surname and name are required",
			"Signatory 2: invalid email format",
		}, res.Errors)
	})
}

func TestValidate_EmailIndemnityVariants(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"variant":        "corporate",
		"preferredEmail": "ops@acme.com",
		"agreedToTerms":  true,
	}
	res := validate(t, submission.KindEmailIndemnity, data)
	assert.Equal(t, []string{"companyName is required", "primarySignature is required"}, res.Errors)

	data["companyName"] = "Acme Ltd"
	data["primarySignature"] = "data:image/png;base64,AAAA"
	res = validate(t, submission.KindEmailIndemnity, data)
	assert.True(t, res.Valid, res.Errors)
}

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	t.Run("type mismatch names the field", func(t *testing.T) {
		t.Parallel()
		data := redemptionData()
		data["fullName"] = map[string]any{"first": "Jane"}
		res := validate(t, submission.KindRedemption, data)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"fullName has an invalid value"}, res.Errors)
	})

	t.Run("type mismatch does not hide other failures", func(t *testing.T) {
		t.Parallel()
		data := redemptionData()
		data["clientId"] = map[string]any{"x": 1}
		data["email"] = "ab.com"
		delete(data, "bank")
		delete(data, "branch")

		res := validate(t, submission.KindRedemption, data)
		assert.Equal(t, []string{
			"clientId has an invalid value",
			"bank is required",
			"branch is required",
			"Invalid email format",
		}, res.Errors)
	})

	t.Run("every mistyped field is reported once", func(t *testing.T) {
		t.Parallel()
		data := redemptionData()
		data["bank"] = []any{"First Bank"}
		data["fullName"] = map[string]any{}
		data["userEmail"] = map[string]any{}

		res := validate(t, submission.KindRedemption, data)
		assert.Equal(t, []string{
			"fullName has an invalid value",
			"bank has an invalid value",
			"userEmail has an invalid value",
		}, res.Errors)
	})

	t.Run("numbers are kept as typed", func(t *testing.T) {
		t.Parallel()
		data := redemptionData()
		data["unitsToRedeemFigures"] = 1500
		data["accountNumber"] = 123456
		res := validate(t, submission.KindRedemption, data)
		assert.True(t, res.Valid, res.Errors)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"missing", ``},
		{"null", `null`},
		{"array", `[1,2]`},
		{"string", `"x"`},
		{"broken", `{"fullName":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := submission.DecodeForm(submission.KindRedemption, []byte(tt.raw))
			assert.True(t, submission.IsStructural(err), err)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := submission.DecodeForm(submission.Kind("pension"), []byte(`{}`))
		assert.ErrorIs(t, err, submission.ErrUnknownKind)
	})
}
