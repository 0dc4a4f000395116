package entropy

import (
	"fmt"
	"strings"
)

// Purpose names what a roll was for.
type Purpose string

const (
	PurposeAvailability  Purpose = "availability"
	PurposeProduct       Purpose = "product"
	PurposeSize          Purpose = "size"
	PurposeManualPick    Purpose = "manual_pick"
	PurposeBonusProduct  Purpose = "bonus_product"
	PurposeBonusSize     Purpose = "bonus_size"
	PurposeMerchantSkill Purpose = "merchant_skill"
)

// Record is one logged roll. Product is empty for rolls that are not tied
// to a specific good.
type Record struct {
	Purpose Purpose
	Product string
	Values  []int
}

// String renders the record for the roll summary, e.g. "Size roll (fish): 34".
func (r Record) String() string {
	label := strings.ReplaceAll(string(r.Purpose), "_", " ")
	label = strings.ToUpper(label[:1]) + label[1:] + " roll"
	if r.Product != "" {
		label += " (" + r.Product + ")"
	}
	if len(r.Values) == 1 {
		return fmt.Sprintf("%s: %d", label, r.Values[0])
	}
	return fmt.Sprintf("%s: %v", label, r.Values)
}

// Log is the ordered audit trail of every roll in one visit. Records are
// only appended; nothing reads them back to make decisions.
type Log struct {
	records []Record
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record appends a roll.
func (l *Log) Record(purpose Purpose, product string, values ...int) {
	l.records = append(l.records, Record{
		Purpose: purpose,
		Product: product,
		Values:  append([]int(nil), values...),
	})
}

// Records returns a copy of the log in roll order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Find returns the first record matching purpose and product.
func (l *Log) Find(purpose Purpose, product string) (Record, bool) {
	for _, r := range l.records {
		if r.Purpose == purpose && r.Product == product {
			return r, true
		}
	}
	return Record{}, false
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}
