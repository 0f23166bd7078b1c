/*
Package backend provides the transports that carry cycle measurements from a
zkVM guest to its host.

Every transport implements Backend: read the current cycle counter, estimate
the remaining heap, and report a named measurement. Three variants exist and
exactly one is injected into a tracker at startup:

  - Syscall performs one blocking waPC host call per report on the
    cycles/cycle_metrics channel, sending a name-terminated record.
  - Hook writes count-prefixed records to a numbered output channel and reads
    cycle counts back from a numbered input channel.
  - Facade stands in when no VM is present. It reads zero cycles and panics on
    Report, because reporting without a VM means the build is missing its
    execution target.

Transport failures inside the guest are not recoverable. Cycle counter reads
that get a malformed answer panic with an error wrapping
cycles.ErrHostResponseInvalid; Report returns its error to the caller, which
for the tracker is terminal.
*/
package backend
