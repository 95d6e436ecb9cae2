package executor

/*
this file holds the per command handlers the VM dispatches to. Each one
touches the tree exactly once, keeps the lookup cache coherent and counts
the command.
*/

// ExecuteInsert upserts key. The cached value for key, if any, is dropped
// before the next lookup can observe it.
func (vm *VM) ExecuteInsert(key, value int64) {
	vm.tree.Insert(key, value)
	vm.cache.Invalidate(key)
	vm.metrics.observe(cmdInsert)
}

// ExecuteRemove deletes key if present. Absent keys are not an error.
func (vm *VM) ExecuteRemove(key int64) {
	removed := vm.tree.Remove(key)
	vm.cache.Invalidate(key)
	vm.metrics.observe(cmdRemove)
	if !removed {
		vm.log.WithField("key", key).Debug("remove: key not present")
	}
}

func (vm *VM) ExecuteLookup(key int64) (int64, bool) {
	vm.metrics.observe(cmdLookup)

	if v, ok := vm.cache.Get(key); ok {
		vm.metrics.cacheHit()
		return v, true
	}
	vm.metrics.cacheMiss(vm.cache != nil)

	v, ok := vm.tree.Lookup(key)
	if ok {
		vm.cache.Set(key, v)
	}
	return v, ok
}

// ExecuteLowerBound answers with the value of the smallest key >= key, as
// far as the tree's single leaf hop can see.
func (vm *VM) ExecuteLowerBound(key int64) (int64, bool) {
	vm.metrics.observe(cmdLowerBound)
	_, v, ok := vm.tree.LowerBound(key)
	return v, ok
}
