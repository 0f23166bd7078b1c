/*
Package metrics mirrors cycle measurements into the Tarmac metrics capability
of the host runtime.

A Mirror implements tracker.Observer. For every measurement named N it
increments the counter N_calls_total and observes the histograms N_cycles and
N_free_heap_bytes, each backed by protobuf payloads sent over waPC host calls.
Names are sanitized to the metric name charset of the host.

The mirror is optional and lives outside the core tracker so guests that only
need the cycle channel do not link a protobuf runtime.

Emission follows Prometheus-style ergonomics: Inc and Observe are best-effort
and do not return errors. Marshal or host-call failures are swallowed to avoid
impacting the measured program.
*/
package metrics
