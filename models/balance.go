package models

import "fmt"

// SuiCoinType is the canonical coin type tag of the native SUI token.
const SuiCoinType = "0x2::sui::SUI"

// MistPerSui is the number of smallest units (MIST) in one SUI.
const MistPerSui = 1_000_000_000

// CoinBalance is one (coin type, amount) pair returned by a fullnode
// balance lookup. Amounts are in the coin's smallest unit.
type CoinBalance struct {
	// CoinType is the canonical Move type tag of the coin.
	CoinType string `json:"coinType"`

	// TotalBalance is the summed balance in smallest units.
	TotalBalance uint64 `json:"totalBalance,string"`
}

// SuiBalance extracts the native SUI amount from a balance set.
// A missing SUI entry means the address holds no SUI and is reported
// as zero, not as an error.
func SuiBalance(balances []CoinBalance) uint64 {
	for _, b := range balances {
		if b.CoinType == SuiCoinType {
			return b.TotalBalance
		}
	}
	return 0
}

// FormatMist renders a MIST amount as a decimal SUI string with four
// fractional digits ("1.2345 SUI"). Integer math only, no float rounding.
func FormatMist(mist uint64) string {
	whole := mist / MistPerSui
	frac := (mist % MistPerSui) / (MistPerSui / 10_000)
	return fmt.Sprintf("%d.%04d SUI", whole, frac)
}

// TruncateAddress shortens a wallet address for display,
// keeping start characters from the head and end from the tail.
func TruncateAddress(address string, start, end int) string {
	if len(address) <= start+end+3 {
		return address
	}
	return address[:start] + "..." + address[len(address)-end:]
}
