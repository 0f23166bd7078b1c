/*
Package tracker measures the cycle cost of guest operations.

A Tracker wraps a traced operation: it reads the backend cycle counter
immediately before and after running the operation once, takes a heap
snapshot, and reports the saturating difference under the given name. The
operation's results are returned unchanged.

	t, _ := tracker.New(tracker.Config{Backend: b})
	root := tracker.Track(t, "hash_merkle_root", func() [32]byte {
		return merkleRoot(leaves)
	})

Operations that return an error are reported too; their error passes through.
An operation that panics is not reported. A report the backend cannot deliver
panics, since the measurement run is meaningless without it.
*/
package tracker
