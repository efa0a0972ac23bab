// Package stale implements the staleness oracle: the decision whether a
// tracked file changed since the fingerprint last recorded for it.
package stale

import (
	"go.chol.dev/cbuild/internal/core/ports"
)

// Oracle compares on-disk fingerprints against the cache store.
type Oracle struct {
	store ports.CacheStore
	fp    ports.Fingerprinter
}

// NewOracle creates an Oracle reading and updating the given store.
func NewOracle(store ports.CacheStore, fp ports.Fingerprinter) *Oracle {
	return &Oracle{
		store: store,
		fp:    fp,
	}
}

// CheckAndUpdate reports whether path changed since the last recorded
// fingerprint and synchronizes the stored value when it did. A path with no
// prior record always reads as changed. Repeated calls for an unchanged file
// are no-ops after the first.
func (o *Oracle) CheckAndUpdate(path string) (bool, error) {
	now, err := o.fp.Fingerprint(path)
	if err != nil {
		return false, err
	}

	prev, ok := o.store.Get(path)
	if ok && prev == now {
		return false, nil
	}

	o.store.Set(path, now)
	return true, nil
}
