package moneykeeper

import (
	"fmt"
	"slices"
	"strings"
)

// Type qualifies a transaction as money coming in or going out.
type Type int

const (
	Income Type = iota
	Expense
)

func (t Type) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseType parses a string into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// MaxTags is the maximum number of tags a transaction may carry.
const MaxTags = 5

// DefaultDescription replaces a blank description.
const DefaultDescription = "No description"

// The ledger file separates fields with ',' and tags with ';'. Free-text
// values holding either one (or a newline) would shift fields on reload,
// so they are refused at validation time.
func checkText(field, value string) error {
	if strings.ContainsAny(value, ",\n") {
		return ValidationError{Field: field, Reason: "cannot contain ',' or a newline"}
	}
	return nil
}

// IDSequence hands out ledger-unique transaction ids. It is owned by a
// Ledger and seeded by the codec from the persisted high-water mark, so id
// generation stays deterministic and test-seedable.
type IDSequence struct {
	next int
}

// NewIDSequence returns a sequence whose first id is 1.
func NewIDSequence() IDSequence { return IDSequence{next: 1} }

// Next returns the next unused id and consumes it.
func (s *IDSequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Seed moves the sequence forward so that the next id is strictly greater
// than every id seen so far. Seeding backwards is a no-op.
func (s *IDSequence) Seed(highWater int) {
	if highWater >= s.next {
		s.next = highWater + 1
	}
}

// Transaction is a single monetary event. Once constructed it only changes
// through validated setters, and a rejected mutation leaves it untouched.
//
// A Transaction is a value owned by the Account holding it; copies are fine
// for filtered views but identity is carried by the id alone.
type Transaction struct {
	id          int
	amount      float64
	currency    string
	kind        Type
	category    string
	date        Date
	description string
	tags        []string
}

// NewTransaction validates the fields and assigns the next unused id from
// seq. On failure no id is consumed.
//
// A blank currency defaults to the reference currency, a zero date to
// today, and a blank description to DefaultDescription.
func NewTransaction(seq *IDSequence, kind Type, amount float64, currency, category string, day Date, description string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if strings.TrimSpace(category) == "" {
		return Transaction{}, ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	if err := checkText("category", category); err != nil {
		return Transaction{}, err
	}
	if err := checkText("currency", currency); err != nil {
		return Transaction{}, err
	}
	if err := checkText("description", description); err != nil {
		return Transaction{}, err
	}
	if day.IsZero() {
		day = Today()
	}
	if currency == "" {
		currency = ReferenceCurrency
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return Transaction{
		id:          seq.Next(),
		amount:      amount,
		currency:    currency,
		kind:        kind,
		category:    category,
		date:        day,
		description: description,
	}, nil
}

// ID returns the ledger-unique identifier of the transaction.
func (t Transaction) ID() int { return t.id }

// Amount returns the unsigned amount, in the transaction's own currency.
func (t Transaction) Amount() float64 { return t.amount }

// Currency returns the currency code the amount is denominated in.
func (t Transaction) Currency() string { return t.currency }

// Type returns whether the transaction is an income or an expense.
func (t Transaction) Type() Type { return t.kind }

// Category returns the transaction category.
func (t Transaction) Category() string { return t.category }

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.date }

// Description returns the free-form description.
func (t Transaction) Description() string { return t.description }

// SignedAmount returns the amount with its sign determined by the type:
// positive for income, negative for expense.
func (t Transaction) SignedAmount() float64 {
	if t.kind == Income {
		return t.amount
	}
	return -t.amount
}

// SetAmount replaces the amount after validating it.
func (t *Transaction) SetAmount(amount float64) error {
	if amount <= 0 {
		return ValidationError{Field: "amount", Reason: "must be positive"}
	}
	t.amount = amount
	return nil
}

// SetCategory replaces the category after validating it.
func (t *Transaction) SetCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	if err := checkText("category", category); err != nil {
		return err
	}
	t.category = category
	return nil
}

// SetDate replaces the date. Only a constructed (non-zero) Date is accepted.
func (t *Transaction) SetDate(day Date) error {
	if day.IsZero() {
		return ValidationError{Field: "date", Reason: "zero date"}
	}
	t.date = day
	return nil
}

// SetType replaces the income/expense qualifier.
func (t *Transaction) SetType(kind Type) { t.kind = kind }

// SetDescription replaces the description, substituting the placeholder for
// a blank value.
func (t *Transaction) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		t.description = DefaultDescription
		return nil
	}
	if err := checkText("description", description); err != nil {
		return err
	}
	t.description = description
	return nil
}

// Tags returns a copy of the tags in insertion order.
func (t Transaction) Tags() []string { return slices.Clone(t.tags) }

// AddTag appends a tag, preserving insertion order. It fails with
// ErrTagLimit past MaxTags tags and with ErrDuplicateTag on a repeat;
// either way the existing tags are untouched.
func (t *Transaction) AddTag(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ValidationError{Field: "tag", Reason: "cannot be empty"}
	}
	if strings.ContainsAny(tag, ",;\n") {
		return ValidationError{Field: "tag", Reason: "cannot contain ',', ';' or a newline"}
	}
	if len(t.tags) >= MaxTags {
		return ErrTagLimit
	}
	if slices.Contains(t.tags, tag) {
		return ErrDuplicateTag
	}
	t.tags = append(t.tags, tag)
	return nil
}

// RemoveTag deletes the tag at the given position. It is a no-op when the
// index is out of range.
func (t *Transaction) RemoveTag(i int) {
	if i < 0 || i >= len(t.tags) {
		return
	}
	t.tags = slices.Delete(t.tags, i, i+1)
}

// AmountIn converts the unsigned amount into the given currency using the
// rate table. The transaction's own currency converts without consulting
// the table.
func (t Transaction) AmountIn(r *Rates, currency string) (float64, error) {
	return r.Convert(t.amount, t.currency, currency)
}

// Summary returns a one-line human description of the transaction.
func (t Transaction) Summary() string {
	sign := "[+]"
	if t.kind == Expense {
		sign = "[-]"
	}
	return fmt.Sprintf("%s %s %.2f %s (%s) %s", t.date, sign, t.amount, t.currency, t.category, t.description)
}
