package gmo

import "encoding/json"

// Response represents the envelope GMO Coin wraps around every REST payload.
// Status 0 means success; any other value comes with a list of messages.
type Response struct {
	Status       int             `json:"status"`
	Data         json.RawMessage `json:"data"` // payload varies per endpoint, decoded by the caller
	Messages     []APIMessage    `json:"messages"`
	ResponseTime string          `json:"responsetime"`
}

// APIMessage is a single error entry reported by the venue.
type APIMessage struct {
	Code string `json:"message_code"`   // e.g. "ERR-5003"
	Text string `json:"message_string"` // human readable description
}

// ExchangeStatus is the trading status reported by /v1/status.
type ExchangeStatus string

const (
	StatusOpen        ExchangeStatus = "OPEN"
	StatusPreOpen     ExchangeStatus = "PREOPEN"
	StatusMaintenance ExchangeStatus = "MAINTENANCE"
)

type StatusData struct {
	Status ExchangeStatus `json:"status"`
}

// Execution is a single trade execution as the venue reports it.
// Numeric fields stay strings here; parsing happens at the storage boundary.
type Execution struct {
	ExecutionID int64  `json:"executionId"`
	OrderID     int64  `json:"orderId"`
	Symbol      string `json:"symbol"`
	Side        string `json:"side"` // "BUY" or "SELL"
	SettleType  string `json:"settleType"`
	Size        string `json:"size"`
	Price       string `json:"price"`
	LossGain    string `json:"lossGain"`
	Fee         string `json:"fee"`
	Timestamp   string `json:"timestamp"` // RFC3339, e.g. "2019-03-19T02:15:06.001Z"
}

// ExecutionList is the payload of /v1/executions.
type ExecutionList struct {
	List []Execution `json:"list"`
}

// LatestExecutions is the payload of /v1/latestExecutions.
// The venue caps the window to the most recent 24 hours.
type LatestExecutions struct {
	Pagination Pagination  `json:"pagination"`
	List       []Execution `json:"list"`
}

type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	Count       int64 `json:"count"`
}

// Asset is one balance entry from /v1/account/assets.
type Asset struct {
	Amount         string `json:"amount"`
	Available      string `json:"available"`
	ConversionRate string `json:"conversionRate"`
	Symbol         string `json:"symbol"`
}

// TickerEntry is one symbol snapshot from /v1/ticker.
type TickerEntry struct {
	Ask       string `json:"ask"`
	Bid       string `json:"bid"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Last      string `json:"last"`
	Symbol    string `json:"symbol"`
	Timestamp string `json:"timestamp"`
	Volume    string `json:"volume"`
}
