// Package handle exposes the bignum engine through a flat, handle-based
// contract: callers allocate operands, invoke one entry point, receive a
// fresh handle or Absent, and release every handle they hold.
//
// A Table owns the Numbers behind its handles. It is not safe for concurrent
// use; each goroutine should own its own Table.
package handle
