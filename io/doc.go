// Package io provides the byte and word streams that surround the processor:
// the binary instruction stream (Tape), program images copied into memory at
// reset (Rom), and the read-only view of screen memory consumed by a
// renderer (Screen).
package io
