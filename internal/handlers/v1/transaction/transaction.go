package transaction

import (
	"encoding/json"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           int64  `json:"id" doc:"Transaction ID"`
	Title        string `json:"title" doc:"Short description"`
	Amount       string `json:"amount" doc:"Decimal amount with two fractional digits"`
	Date         string `json:"date" format:"date" doc:"Transaction date, YYYY-MM-DD"`
	Notes        string `json:"notes" doc:"Free-form notes"`
	Category     int64  `json:"category" doc:"Category ID"`
	CategoryName string `json:"category_name" doc:"Name of the category"`
}

// Amount accepts a JSON number or a numeric string and keeps its exact text
// so no precision is lost before decimal parsing.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// Schema implements huma.SchemaProvider.
func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Decimal amount, at most 10 digits with 2 decimal places",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}

// TransactionBody is the request body for creating or updating a
// transaction. Unknown fields are ignored.
type TransactionBody struct {
	_        struct{} `additionalProperties:"true"`
	Category *int64   `json:"category,omitempty" doc:"Category ID"`
	Title    *string  `json:"title,omitempty" doc:"Short description, at most 140 characters"`
	Amount   *Amount  `json:"amount,omitempty" doc:"Decimal amount"`
	Date     *string  `json:"date,omitempty" doc:"YYYY-MM-DD, defaults to today on create"`
	Notes    *string  `json:"notes,omitempty" doc:"Free-form notes"`
}

// IDPath is the path parameter addressing one transaction.
type IDPath struct {
	ID string `path:"id" doc:"Transaction ID"`
}

// TransactionOutput is the Huma output carrying a single transaction.
type TransactionOutput struct {
	Body Transaction
}

const tags = "Transactions"

func parseTransactionBody(body *TransactionBody) service.TransactionInput {
	in := service.TransactionInput{
		CategoryID: omit.FromPtr(body.Category),
		Title:      omit.FromPtr(body.Title),
		Date:       omit.FromPtr(body.Date),
		Notes:      omit.FromPtr(body.Notes),
	}
	if body.Amount != nil {
		in.Amount = omit.From(string(*body.Amount))
	}
	return in
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		Title:        tx.Title,
		Amount:       tx.Amount.StringFixed(2),
		Date:         tx.Date.Format(time.DateOnly),
		Notes:        tx.Notes,
		Category:     tx.CategoryID,
		CategoryName: tx.CategoryName,
	}
}
