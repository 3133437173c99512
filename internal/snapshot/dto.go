package snapshot

import (
	"github.com/Ashikrreddy06/Split-Wise/internal/entry"
	"github.com/Ashikrreddy06/Split-Wise/internal/group"
	"github.com/Ashikrreddy06/Split-Wise/internal/person"
)

// Version identifies the snapshot document layout
const Version = 1

// Snapshot is a full portable copy of the ledger state. Exporting and
// re-importing a snapshot reproduces identical balances.
type Snapshot struct {
	Version        int              `json:"version"`
	ExportedAt     string           `json:"exported_at"`
	CurrencySymbol string           `json:"currency_symbol"`
	Persons        []*person.Person `json:"persons"`
	Groups         []*group.Group   `json:"groups"`
	Entries        []*entry.Entry   `json:"entries"`
}
