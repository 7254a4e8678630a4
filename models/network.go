package models

import "fmt"

// Network identifies a Sui network the wallet can talk to.
// The value selects the fullnode RPC endpoint and the explorer links.
type Network int

const (
	// Devnet is the development network. State is reset frequently.
	Devnet Network = iota

	// Testnet is the public test network.
	Testnet

	// Mainnet is the production network.
	Mainnet
)

// URL returns the fullnode JSON-RPC endpoint of the network.
func (n Network) URL() string {
	switch n {
	case Devnet:
		return "https://fullnode.devnet.sui.io:443"
	case Testnet:
		return "https://fullnode.testnet.sui.io:443"
	case Mainnet:
		return "https://fullnode.mainnet.sui.io:443"
	}
	return ""
}

// Name returns the human-readable network name.
func (n Network) Name() string {
	switch n {
	case Devnet:
		return "Devnet"
	case Testnet:
		return "Testnet"
	case Mainnet:
		return "Mainnet"
	}
	return "Unknown"
}

// AddressExplorerURL returns the Sui explorer link for an address.
func (n Network) AddressExplorerURL(address string) string {
	if n == Mainnet {
		return fmt.Sprintf("https://suiexplorer.com/address/%s", address)
	}
	return fmt.Sprintf("https://suiexplorer.com/address/%s?network=%s", address, n.queryName())
}

func (n Network) queryName() string {
	switch n {
	case Devnet:
		return "devnet"
	case Testnet:
		return "testnet"
	default:
		return "mainnet"
	}
}

// ParseNetwork resolves a network from its configured name
// ("devnet", "testnet", "mainnet", short forms accepted).
// Unknown names fall back to Testnet, the safe default for a new install.
func ParseNetwork(s string) Network {
	switch s {
	case "devnet", "dev", "Devnet":
		return Devnet
	case "mainnet", "main", "Mainnet":
		return Mainnet
	default:
		return Testnet
	}
}

func (n Network) String() string {
	return n.Name()
}
