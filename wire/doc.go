/*
Package wire encodes and decodes cycle metric records without a schema
library.

Two layouts exist, each owned by one transport and never mixed on the same
channel:

  - LayoutTerminated: name ++ 0x00 ++ cycles (8 bytes LE) ++ free heap (8 bytes LE).
    Used by the syscall transport.
  - LayoutPrefixed: cycles (8 bytes LE) ++ name. Carries no heap field.
    Used by the hook transport.

Numeric fields are fixed-width little-endian. Names are not length-prefixed,
so a name must not contain a NUL byte. Decode failures are typed and wrap
ErrDecode; check them with errors.Is.
*/
package wire
