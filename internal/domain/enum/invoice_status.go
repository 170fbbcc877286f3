package enum

import "encoding/json"

// InvoiceStatus represents the lifecycle state of a supplier invoice
type InvoiceStatus int

const (
	InvoiceStatusPending   InvoiceStatus = 0
	InvoiceStatusDelivered InvoiceStatus = 1
	InvoiceStatusPartial   InvoiceStatus = 2
	InvoiceStatusPaid      InvoiceStatus = 3
)

// ParseInvoiceStatus maps a wire value back to its status. The second
// return is false for unknown values.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	switch s {
	case "pending":
		return InvoiceStatusPending, true
	case "delivered":
		return InvoiceStatusDelivered, true
	case "partial":
		return InvoiceStatusPartial, true
	case "paid":
		return InvoiceStatusPaid, true
	}
	return InvoiceStatusPending, false
}

func (s InvoiceStatus) String() string {
	return [...]string{"pending", "delivered", "partial", "paid"}[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = InvoiceStatusPending
	case "delivered":
		*s = InvoiceStatusDelivered
	case "partial":
		*s = InvoiceStatusPartial
	case "paid":
		*s = InvoiceStatusPaid
	}
	return nil
}
