package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/transaction"
)

const (
	MaxCategoryNameLength = 80
	MaxTitleLength        = 140
	AmountMaxDigits       = 10
	AmountDecimalPlaces   = 2
)

// ValidateCategoryName trims name and checks it is present and short enough.
func ValidateCategoryName(name omit.Val[string]) (string, error) {
	value, ok := name.Get()
	if !ok {
		return "", newValidationError("name", msgRequired)
	}
	verr := &ValidationError{}
	value = validateText(verr, "name", value, MaxCategoryNameLength)
	return value, verr.errOrNil()
}

func validateText(verr *ValidationError, field, value string, maxLen int) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		verr.add(field, msgBlank)
	case utf8.RuneCountInString(value) > maxLen:
		verr.add(field, msgMaxLength(maxLen))
	}
	return value
}

// ValidateAmount parses raw as an exact decimal that fits NUMERIC(10,2).
// Negative amounts are accepted.
func ValidateAmount(raw string) (decimal.Decimal, string) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, msgInvalidNumber
	}

	digits, decimals := precision(amount)
	wholeDigits := digits - decimals
	switch {
	case digits > AmountMaxDigits:
		return decimal.Zero, "Ensure that there are no more than 10 digits in total."
	case decimals > AmountDecimalPlaces:
		return decimal.Zero, "Ensure that there are no more than 2 decimal places."
	case wholeDigits > AmountMaxDigits-AmountDecimalPlaces:
		return decimal.Zero, "Ensure that there are no more than 8 digits before the decimal point."
	}
	return amount, ""
}

// precision returns the number of significant digits and fractional digits of
// d as written, so "12.50" has 4 digits and 2 decimals.
func precision(d decimal.Decimal) (digits, decimals int) {
	coefficient := d.Coefficient()
	coefficient.Abs(coefficient)
	exponent := int(d.Exponent())

	length := len(coefficient.String())
	if exponent >= 0 {
		if coefficient.Sign() == 0 {
			return 0, 0
		}
		return length + exponent, 0
	}

	decimals = -exponent
	if decimals > length {
		return decimals, decimals
	}
	return length, decimals
}

// dateLayout accepts one or two digit months and days.
const dateLayout = "2006-1-2"

// ParseDate parses a YYYY-MM-DD date as midnight UTC. Month and day may omit
// their leading zero.
func ParseDate(raw string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// Today returns the calendar date of now as midnight UTC.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// TransactionInput carries the raw fields of a transaction request body.
// Unset fields were absent from the request.
type TransactionInput struct {
	CategoryID omit.Val[int64]
	Title      omit.Val[string]
	Amount     omit.Val[string]
	Date       omit.Val[string]
	Notes      omit.Val[string]
}

// ValidateTransactionDraft checks a new transaction. category, title and
// amount are required; date defaults to today and notes to empty.
func ValidateTransactionDraft(in TransactionInput, today time.Time) (transaction.TransactionCreate, error) {
	patch, err := validateTransactionFields(in, true)
	if err != nil {
		return transaction.TransactionCreate{}, err
	}

	return transaction.TransactionCreate{
		CategoryID: patch.CategoryID.GetOrZero(),
		Title:      patch.Title.GetOrZero(),
		Amount:     patch.Amount.GetOrZero(),
		Date:       patch.Date.GetOr(today),
		Notes:      patch.Notes.GetOrZero(),
	}, nil
}

// ValidateTransactionPatch checks an update. A full update requires category,
// title and amount; a partial one validates only the supplied fields.
func ValidateTransactionPatch(in TransactionInput, full bool) (transaction.TransactionUpdate, error) {
	return validateTransactionFields(in, full)
}

func validateTransactionFields(in TransactionInput, requireCore bool) (transaction.TransactionUpdate, error) {
	verr := &ValidationError{}
	update := transaction.TransactionUpdate{}

	if categoryID, ok := in.CategoryID.Get(); ok {
		update.CategoryID = omit.From(categoryID)
	} else if requireCore {
		verr.add("category", msgRequired)
	}

	if title, ok := in.Title.Get(); ok {
		update.Title = omit.From(validateText(verr, "title", title, MaxTitleLength))
	} else if requireCore {
		verr.add("title", msgRequired)
	}

	if raw, ok := in.Amount.Get(); ok {
		amount, msg := ValidateAmount(raw)
		if msg != "" {
			verr.add("amount", msg)
		} else {
			update.Amount = omit.From(amount)
		}
	} else if requireCore {
		verr.add("amount", msgRequired)
	}

	if raw, ok := in.Date.Get(); ok {
		if date, valid := ParseDate(raw); valid {
			update.Date = omit.From(date)
		} else {
			verr.add("date", msgInvalidDate)
		}
	}

	if notes, ok := in.Notes.Get(); ok {
		update.Notes = omit.From(strings.TrimSpace(notes))
	}

	if err := verr.errOrNil(); err != nil {
		return transaction.TransactionUpdate{}, err
	}
	return update, nil
}
