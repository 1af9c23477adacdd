package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}

func TestValidateCategoryName(t *testing.T) {
	name, err := ValidateCategoryName(omit.From("  Food  "))
	require.NoError(t, err)
	assert.Equal(t, "Food", name)

	_, err = ValidateCategoryName(omit.Val[string]{})
	assert.Equal(t, msgRequired, fieldErrors(t, err)["name"])

	_, err = ValidateCategoryName(omit.From("   "))
	assert.Equal(t, msgBlank, fieldErrors(t, err)["name"])

	_, err = ValidateCategoryName(omit.From(strings.Repeat("é", 81)))
	assert.Equal(t, msgMaxLength(80), fieldErrors(t, err)["name"])

	name, err = ValidateCategoryName(omit.From(strings.Repeat("é", 80)))
	require.NoError(t, err)
	assert.Len(t, []rune(name), 80)
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantMsg string
	}{
		{raw: "12.50", want: "12.50"},
		{raw: "12.5", want: "12.50"},
		{raw: "-4", want: "-4.00"},
		{raw: "0.00", want: "0.00"},
		{raw: "99999999.99", want: "99999999.99"},
		{raw: "abc", wantMsg: msgInvalidNumber},
		{raw: "", wantMsg: msgInvalidNumber},
		{raw: "1.234", wantMsg: "Ensure that there are no more than 2 decimal places."},
		{raw: "123456789.12", wantMsg: "Ensure that there are no more than 10 digits in total."},
		{raw: "123456789", wantMsg: "Ensure that there are no more than 8 digits before the decimal point."},
		{raw: "0.00001", wantMsg: "Ensure that there are no more than 2 decimal places."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, msg := ValidateAmount(tt.raw)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.Equal(t, tt.want, amount.StringFixed(2))
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	date, ok := ParseDate("2024-03-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), date)

	date, ok = ParseDate("2024-3-5")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), date)

	for _, raw := range []string{"10/03/2024", "2024-02-30", "24-3-5", "2024-003-05", "2024-03-10x", ""} {
		_, ok = ParseDate(raw)
		assert.False(t, ok, raw)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestValidateTransactionDraft(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	create, err := ValidateTransactionDraft(TransactionInput{
		CategoryID: omit.From(int64(1)),
		Title:      omit.From(" Lunch "),
		Amount:     omit.From("12.50"),
	}, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), create.CategoryID)
	assert.Equal(t, "Lunch", create.Title)
	assert.Equal(t, "12.50", create.Amount.StringFixed(2))
	assert.Equal(t, today, create.Date)
	assert.Equal(t, "", create.Notes)

	create, err = ValidateTransactionDraft(TransactionInput{
		CategoryID: omit.From(int64(1)),
		Title:      omit.From("Lunch"),
		Amount:     omit.From("12.50"),
		Date:       omit.From("2024-03-10"),
		Notes:      omit.From("  with Sam "),
	}, today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), create.Date)
	assert.Equal(t, "with Sam", create.Notes)
}

func TestValidateTransactionDraft_CollectsAllErrors(t *testing.T) {
	_, err := ValidateTransactionDraft(TransactionInput{
		Title:  omit.From(strings.Repeat("x", 141)),
		Amount: omit.From("1.999"),
		Date:   omit.From("March 1st"),
	}, time.Now())

	fields := fieldErrors(t, err)
	assert.Equal(t, msgRequired, fields["category"])
	assert.Equal(t, msgMaxLength(140), fields["title"])
	assert.Equal(t, "Ensure that there are no more than 2 decimal places.", fields["amount"])
	assert.Equal(t, msgInvalidDate, fields["date"])
}

func TestValidateTransactionPatch(t *testing.T) {
	update, err := ValidateTransactionPatch(TransactionInput{Notes: omit.From("x")}, false)
	require.NoError(t, err)
	assert.True(t, update.CategoryID.IsUnset())
	assert.True(t, update.Title.IsUnset())
	assert.Equal(t, "x", update.Notes.GetOrZero())

	update, err = ValidateTransactionPatch(TransactionInput{}, false)
	require.NoError(t, err)
	assert.True(t, update.IsEmpty())

	_, err = ValidateTransactionPatch(TransactionInput{Notes: omit.From("x")}, true)
	fields := fieldErrors(t, err)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "amount")

	_, err = ValidateTransactionPatch(TransactionInput{Title: omit.From("  ")}, false)
	assert.Equal(t, msgBlank, fieldErrors(t, err)["title"])
}
