package store

import (
	"fmt"
	"sort"

	"go.polydawn.net/revisr/api/def"
)

/*
	EntryInfo describes one arena entry for inspection and debug dumps.
	Values themselves are summarized by type name only; exposing them
	wholesale would make every dump an escape hatch.
*/
type EntryInfo struct {
	Addr        def.Address     `json:"addr"`
	Fingerprint def.Fingerprint `json:"fingerprint"`
	LastMarked  def.Revision    `json:"lastMarked"`
	ValueType   string          `json:"valueType"`
}

// Snapshot lists all live entries, sorted by address (parents before
// descendants, siblings in byte order).
func (a *Arena) Snapshot() []EntryInfo {
	infos := make([]EntryInfo, 0, len(a.entries))
	for at, ent := range a.entries {
		infos = append(infos, EntryInfo{
			Addr:        at,
			Fingerprint: ent.fingerprint,
			LastMarked:  ent.lastMarked,
			ValueType:   fmt.Sprintf("%T", ent.value),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Addr < infos[j].Addr })
	return infos
}
