// Package model defines domain models for wallet history lookups.
package model

import "github.com/btcsuite/btcd/btcutil"

// AddressShape is the syntactic class of an address.
type AddressShape string

var (
	// ShapeLegacy covers base58 P2PKH (1...) and P2SH (3...) addresses.
	ShapeLegacy AddressShape = "legacy"
	// ShapeSegwit covers bech32/bech32m addresses (bc1...).
	ShapeSegwit AddressShape = "segwit"
)

// Address is a syntactically validated address. Values are created by the
// validator package and are never re-validated downstream.
type Address struct {
	value   string
	shape   AddressShape
	decoded btcutil.Address
}

// NewAddress wraps an already validated address string. decoded may be nil
// when the checksum could not be verified locally.
func NewAddress(value string, shape AddressShape, decoded btcutil.Address) Address {
	return Address{value: value, shape: shape, decoded: decoded}
}

// String returns the trimmed address.
func (a Address) String() string {
	return a.value
}

// Shape returns the syntactic class.
func (a Address) Shape() AddressShape {
	return a.shape
}

// Decoded returns the btcutil representation, or nil.
func (a Address) Decoded() btcutil.Address {
	return a.decoded
}

// ScriptClass names the output script the address pays to.
func (a Address) ScriptClass() string {
	switch a.decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		return "p2pkh"
	case *btcutil.AddressScriptHash:
		return "p2sh"
	case *btcutil.AddressWitnessPubKeyHash:
		return "p2wpkh"
	case *btcutil.AddressWitnessScriptHash:
		return "p2wsh"
	case *btcutil.AddressTaproot:
		return "p2tr"
	default:
		return "unknown"
	}
}

// Equal reports whether the address matches a raw address string reported by a provider.
func (a Address) Equal(raw string) bool {
	return raw != "" && raw == a.value
}
