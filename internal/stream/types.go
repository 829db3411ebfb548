package stream

// ExecutionEvent is a private WebSocket message on the executionEvents
// channel: one fill of one of the account's orders, pushed as it happens.
type ExecutionEvent struct {
	Channel            string `json:"channel"`
	ExecutionID        int64  `json:"executionId"`
	OrderID            int64  `json:"orderId"`
	Symbol             string `json:"symbol"`
	Side               string `json:"side"`
	SettleType         string `json:"settleType"`
	ExecutionSize      string `json:"executionSize"`
	ExecutionPrice     string `json:"executionPrice"`
	LossGain           string `json:"lossGain"`
	Fee                string `json:"fee"`
	ExecutionTimestamp string `json:"executionTimestamp"` // RFC3339
}
