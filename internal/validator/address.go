// Package validator performs local, network-free address checks.
package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
)

// ErrInvalidFormat is returned for input that is not a mainnet address.
var ErrInvalidFormat = errors.New("invalid bitcoin address format")

var (
	legacyPattern = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	segwitPattern = regexp.MustCompile(`^bc1[a-zA-HJ-NP-Z0-9]{6,87}$`)
)

// Parse trims raw and classifies it as a legacy or segwit address.
func Parse(raw string) (model.Address, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return model.Address{}, ErrInvalidFormat
	}

	var shape model.AddressShape
	switch {
	case legacyPattern.MatchString(cleaned):
		shape = model.ShapeLegacy
	case segwitPattern.MatchString(cleaned):
		shape = model.ShapeSegwit
	default:
		return model.Address{}, ErrInvalidFormat
	}

	// Checksum problems are left for the providers to report.
	decoded, err := btcutil.DecodeAddress(cleaned, &chaincfg.MainNetParams)
	if err != nil {
		decoded = nil
	}
	return model.NewAddress(cleaned, shape, decoded), nil
}
