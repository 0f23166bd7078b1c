/*
Package logging offers a client for emitting log entries from a zkVM guest to
the host runtime.

The package exposes a small interface with convenience methods for common log
levels (Info, Warn, Error, Debug, Trace). Each entry is one best-effort host
call, and host calls cost guest cycles, so Config.MinLevel drops entries below
a threshold before they leave the guest. A Client satisfies tracker.Logger.
*/
package logging
