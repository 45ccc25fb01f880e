package domain

// AddressType is the purpose a provider assigns to an address.
type AddressType string

const (
	AddressTypePayment AddressType = "payment"
	AddressTypeOrdinal AddressType = "ordinal"
)

// Network is the Bitcoin network a wallet is connected to.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkSignet  Network = "signet"
)

// Account is an address identity exposed by a connected provider.
// Accounts are immutable for the lifetime of a session.
type Account struct {
	Address     string      `json:"address"`
	Label       string      `json:"label,omitempty"`
	AddressType AddressType `json:"address_type"`
	PublicKey   []byte      `json:"public_key,omitempty"`
}

// ShortAddress returns the first eight characters of addr followed by "...".
func ShortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8] + "..."
}

// IndexOfAccount returns the position of the account with the given address, or -1.
func IndexOfAccount(accounts []Account, address string) int {
	for i := range accounts {
		if accounts[i].Address == address {
			return i
		}
	}
	return -1
}
