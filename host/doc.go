// Package host receives cycle measurements from zkVM guests and folds them
// into running statistics.
//
// A Session owns an Aggregator and builds the two receiving ends a guest can
// talk to: a Router for the syscall transport, whose HostCall method has the
// waPC host call signature, and a Hook for the hook transport. Both decode
// the layout their transport produces and record it in the session.
//
// The Aggregator keeps a (sum, count) entry per measurement name under a
// single mutex. Several sessions may share one Aggregator when proving
// sessions run concurrently in one host process.
package host
