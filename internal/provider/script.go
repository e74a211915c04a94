package provider

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// outputAddress returns the address paid by a btcd output. Older nodes only
// fill Addresses, and non-standard outputs carry nothing but the script, so
// the script is decoded as a last resort. Scripts that pay no single
// address yield an empty string.
func outputAddress(spk btcjson.ScriptPubKeyResult) string {
	if spk.Address != "" {
		return spk.Address
	}
	if len(spk.Addresses) > 0 {
		return spk.Addresses[0]
	}
	if spk.Hex == "" {
		return ""
	}
	script, err := hex.DecodeString(spk.Hex)
	if err != nil {
		return ""
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, &chaincfg.MainNetParams)
	if err != nil || len(addrs) != 1 {
		return ""
	}
	return addrs[0].EncodeAddress()
}
