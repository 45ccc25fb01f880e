package domain

import "time"

// MaxMessageLength bounds gift messages and payment memos.
const MaxMessageLength = 200

// Gift is an immutable record of a completed transfer between two addresses.
type Gift struct {
	ID         string    `json:"id"` // Format: "sender|tx_ref"
	Sender     string    `json:"sender"`
	Recipient  string    `json:"recipient"`
	AmountSats int64     `json:"amount_sats"`
	Message    string    `json:"message,omitempty"`
	TxRef      string    `json:"tx_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

// BuildGiftKey creates the deterministic gift key so redelivered events collapse.
// Format: "sender|tx_ref"
func BuildGiftKey(sender, txRef string) string {
	return sender + "|" + txRef
}
