package tracking

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fast-delivery-orders/internal/domain"
)

// text is a JSON scalar read as a string. Numbers keep their literal form.
// null, false and numeric zero read as empty, so they count as absent.
// Objects and arrays are rejected.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = text(x)
	case bool:
		*t = ""
		if x {
			*t = "true"
		}
	case json.Number:
		*t = text(x.String())
		if f, err := x.Float64(); err == nil && f == 0 {
			*t = ""
		}
	default:
		return fmt.Errorf("expected a JSON scalar, got %s", b)
	}
	return nil
}

// eventMessage is the loosely typed wire form of domain.LifecycleEvent.
// Producers outside this service may send ids and statuses as numbers.
type eventMessage struct {
	OrderID     text `json:"pedido"`
	Status      text `json:"status"`
	Action      text `json:"acao"`
	Customer    text `json:"cliente"`
	DeliveredAt text `json:"entregue_em"`
}

func decodeEvent(message string) (domain.LifecycleEvent, error) {
	var m eventMessage
	if err := json.Unmarshal([]byte(message), &m); err != nil {
		return domain.LifecycleEvent{}, err
	}
	return domain.LifecycleEvent{
		OrderID:     string(m.OrderID),
		Status:      string(m.Status),
		Action:      string(m.Action),
		Customer:    string(m.Customer),
		DeliveredAt: string(m.DeliveredAt),
	}, nil
}
