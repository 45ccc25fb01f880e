package domain

// SessionState is the lifecycle state of a wallet session.
type SessionState string

const (
	SessionDisconnected SessionState = "disconnected"
	SessionConnecting   SessionState = "connecting"
	SessionConnected    SessionState = "connected"
	SessionSwitching    SessionState = "switching"
)

// Session is a point-in-time view of the wallet connection.
type Session struct {
	State           SessionState `json:"state"`
	Connected       bool         `json:"connected"`
	Connecting      bool         `json:"connecting"`
	ActiveAccount   *Account     `json:"active_account,omitempty"`
	Accounts        []Account    `json:"accounts"`
	Provider        string       `json:"provider,omitempty"`
	WatchesAccounts bool         `json:"watches_accounts"`
	LastError       string       `json:"last_error,omitempty"` // error code of the last failed transition
}

// Clone returns a deep copy so callers never share account slices with the session.
func (s Session) Clone() Session {
	out := s
	if s.Accounts != nil {
		out.Accounts = make([]Account, len(s.Accounts))
		for i, a := range s.Accounts {
			out.Accounts[i] = a
			if a.PublicKey != nil {
				out.Accounts[i].PublicKey = append([]byte(nil), a.PublicKey...)
			}
		}
	}
	if s.ActiveAccount != nil {
		active := *s.ActiveAccount
		if active.PublicKey != nil {
			active.PublicKey = append([]byte(nil), active.PublicKey...)
		}
		out.ActiveAccount = &active
	}
	return out
}

// IsBusy returns true while a connect or switch is in flight.
func (s Session) IsBusy() bool {
	return s.State == SessionConnecting || s.State == SessionSwitching
}
