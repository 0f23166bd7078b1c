/*
Package cycles provides the shared runtime configuration and channel
identifiers for measuring the cycle cost of functions running inside a zkVM
guest.

Guest code wraps a traced operation with the tracker package, which reads the
cycle counter before and after the operation and reports the delta through a
backend transport. The identifiers declared here must match between the guest
build and the host that registers handlers for them; a mismatch silently drops
or misroutes records.

New registers the guest entry point with waPC. RuntimeConfig is shared by the
capability clients (backend, logging, metrics). DefaultNamespace is used when a
namespace is not explicitly provided.
*/
package cycles
