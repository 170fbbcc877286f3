package enum

import "encoding/json"

// NotificationType represents the kind of a back-office notification
type NotificationType int

const (
	NotificationTypeLowStock NotificationType = 0
	NotificationTypeOrder    NotificationType = 1
	NotificationTypePayment  NotificationType = 2
)

func (t NotificationType) String() string {
	return [...]string{"low_stock", "order", "payment"}[t]
}

func (t NotificationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *NotificationType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = NotificationType(i)
		return nil
	}
	switch str {
	case "low_stock":
		*t = NotificationTypeLowStock
	case "order":
		*t = NotificationTypeOrder
	case "payment":
		*t = NotificationTypePayment
	}
	return nil
}
