package lookup

import (
	"time"

	"github.com/goodnatureofminers/hodlscope-backend/internal/model"
)

// Overrides pins the first receive time of addresses whose history no public
// index can page through in reasonable time.
type Overrides map[string]time.Time

// DefaultOverrides returns the built-in table.
func DefaultOverrides() Overrides {
	return Overrides{
		// genesis block coinbase
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa": time.Unix(1231006505, 0).UTC(),
	}
}

// FirstReceive returns the pinned time for address, if any.
func (o Overrides) FirstReceive(address model.Address) (time.Time, bool) {
	t, ok := o[address.String()]
	return t, ok
}
