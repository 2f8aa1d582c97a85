package lib

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a positive decimal quantity of money. It wraps decimal.Decimal
// so that it can round-trip through the yaml records file as a plain string
// scalar instead of yaml's float types, which would lose precision.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses a user-supplied amount string, such as "120" or "99.50".
// The value must parse and must be greater than zero.
func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}

	if !d.IsPositive() {
		return Amount{}, fmt.Errorf("amount must be greater than zero, got %v", d)
	}

	return Amount{d}, nil
}

func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("failed to parse amount %q: %w", value.Value, err)
	}

	a.Decimal = d

	return nil
}

// PaymentRecord is one logged payment event. The ID and Timestamp are set
// once at creation and never change. Label and Proof are optional; a nil
// pointer means the user never provided a value, which is distinct from an
// empty string on disk but treated the same everywhere it is displayed.
type PaymentRecord struct {
	ID        string    `yaml:"id"`
	Amount    Amount    `yaml:"amount"`
	Person    string    `yaml:"person"`
	Mode      string    `yaml:"mode"`
	Label     *string   `yaml:"label,omitempty"`
	Status    string    `yaml:"status"`
	Timestamp time.Time `yaml:"timestamp"`
	// Proof holds a data URI of an image the user attached as evidence.
	// These can be large, so avoid rendering them anywhere.
	Proof *string `yaml:"proof,omitempty"`
}

// NewRecord builds a record with a fresh ID and the current time. The label
// and proof are attached afterwards by the caller if the user provided them.
func NewRecord(person string, amount Amount, mode, status string) PaymentRecord {
	return PaymentRecord{
		ID:        uuid.NewString(),
		Amount:    amount,
		Person:    person,
		Mode:      mode,
		Status:    status,
		Timestamp: time.Now(),
	}
}

// LabelText returns the label, or an empty string when no label was set.
func (r *PaymentRecord) LabelText() string {
	if r.Label == nil {
		return ""
	}

	return *r.Label
}

// HasProof reports whether a non-empty proof image is attached.
func (r *PaymentRecord) HasProof() bool {
	return r.Proof != nil && *r.Proof != ""
}

// SetLabel attaches a label; empty input means "no label" and clears it.
func (r *PaymentRecord) SetLabel(label string) {
	if label == "" {
		r.Label = nil
		return
	}

	r.Label = &label
}

// SetProof attaches an encoded proof image; empty input clears it.
func (r *PaymentRecord) SetProof(proof string) {
	if proof == "" {
		r.Proof = nil
		return
	}

	r.Proof = &proof
}

// RecordSet is an ordered sequence of records, newest first. New records are
// prepended, so the head of the slice is always the most recent entry
// regardless of what the individual timestamps say.
type RecordSet []PaymentRecord

// Prepend inserts a record at the head of the set.
func Prepend(rs RecordSet, r PaymentRecord) RecordSet {
	out := make(RecordSet, 0, len(rs)+1)
	out = append(out, r)
	out = append(out, rs...)

	return out
}

// RemoveByID removes the record with the given id, if present. The second
// return value reports whether anything was removed.
func RemoveByID(rs RecordSet, id string) (RecordSet, bool) {
	for i := range rs {
		if rs[i].ID == id {
			out := make(RecordSet, 0, len(rs)-1)
			out = append(out, rs[:i]...)
			out = append(out, rs[i+1:]...)

			return out, true
		}
	}

	return rs, false
}

// ForPerson returns the subset of records whose person matches exactly.
// Person names are free text and case-sensitive, so "Rohit" and "rohit"
// are two different people.
func ForPerson(rs RecordSet, person string) RecordSet {
	out := RecordSet{}

	for i := range rs {
		if rs[i].Person == person {
			out = append(out, rs[i])
		}
	}

	return out
}

// People returns every distinct person in the set, in first-seen order.
// Since the set is newest-first, the person with the most recent record
// comes first.
func People(rs RecordSet) []string {
	seen := make(map[string]bool)
	out := []string{}

	for i := range rs {
		if seen[rs[i].Person] {
			continue
		}

		seen[rs[i].Person] = true

		out = append(out, rs[i].Person)
	}

	return out
}
