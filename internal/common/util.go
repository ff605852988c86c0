// Package common holds small helpers shared across the client.
package common

// WipeByteArray zeroes the buffer in place. Used to drop password bytes from
// memory as soon as they are no longer needed. Nil-safe.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
