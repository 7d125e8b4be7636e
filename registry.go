package lambdaioc

import (
	"github.com/benbjohnson/immutable"
)

type syncBinding struct {
	factory Factory
	// slot is the position of the key in registry.syncOrder.
	slot int
}

type asyncBinding struct {
	factory AsyncFactory
	slot    int
}

// registry is the snapshot backing one Container. All of its fields are
// persistent structures: every "write" returns a new registry and leaves the
// receiver untouched, so containers derived from each other never see each
// other's bindings.
//
// A key lives in at most one of sync and async. The order lists may hold stale
// entries for keys that moved namespace or were re-appended; an entry is live
// only when the binding's slot points back at it.
type registry struct {
	sync       *immutable.Map[Key, syncBinding]
	async      *immutable.Map[Key, asyncBinding]
	syncOrder  *immutable.List[Key]
	asyncOrder *immutable.List[Key]
}

func newRegistry() registry {
	return registry{
		sync:       immutable.NewMap[Key, syncBinding](keyHasher{}),
		async:      immutable.NewMap[Key, asyncBinding](keyHasher{}),
		syncOrder:  immutable.NewList[Key](),
		asyncOrder: immutable.NewList[Key](),
	}
}

// withSync binds key to factory in the sync namespace. The second result is
// true if key was bound before, in either namespace.
func (r registry) withSync(key Key, factory Factory) (registry, bool) {
	next := r
	existing, found := r.sync.Get(key)
	slot := existing.slot
	if !found {
		slot = r.syncOrder.Len()
		next.syncOrder = r.syncOrder.Append(key)
	}
	next.sync = r.sync.Set(key, syncBinding{factory: factory, slot: slot})

	_, wasAsync := r.async.Get(key)
	if wasAsync {
		next.async = r.async.Delete(key)
	}
	return next, found || wasAsync
}

// withAsync is withSync for the async namespace.
func (r registry) withAsync(key Key, factory AsyncFactory) (registry, bool) {
	next := r
	existing, found := r.async.Get(key)
	slot := existing.slot
	if !found {
		slot = r.asyncOrder.Len()
		next.asyncOrder = r.asyncOrder.Append(key)
	}
	next.async = r.async.Set(key, asyncBinding{factory: factory, slot: slot})

	_, wasSync := r.sync.Get(key)
	if wasSync {
		next.sync = r.sync.Delete(key)
	}
	return next, found || wasSync
}

func (r registry) syncFactory(key Key) (Factory, bool) {
	if !isValidKey(key) {
		return nil, false
	}
	binding, found := r.sync.Get(key)
	return binding.factory, found
}

func (r registry) asyncFactory(key Key) (AsyncFactory, bool) {
	if !isValidKey(key) {
		return nil, false
	}
	binding, found := r.async.Get(key)
	return binding.factory, found
}

// syncKeys returns the live sync keys in registration order, keeping only
// those accepted by match.
func (r registry) syncKeys(match func(Key) bool) []Key {
	keys := []Key{}
	itr := r.syncOrder.Iterator()
	for !itr.Done() {
		slot, key := itr.Next()
		if !match(key) {
			continue
		}
		if binding, found := r.sync.Get(key); found && binding.slot == slot {
			keys = append(keys, key)
		}
	}
	return keys
}

func (r registry) asyncKeys(match func(Key) bool) []Key {
	keys := []Key{}
	itr := r.asyncOrder.Iterator()
	for !itr.Done() {
		slot, key := itr.Next()
		if !match(key) {
			continue
		}
		if binding, found := r.async.Get(key); found && binding.slot == slot {
			keys = append(keys, key)
		}
	}
	return keys
}

func anyKey(Key) bool { return true }
