package crypto

import "runtime"

// Wipe zeroes every buffer in bufs. Store reads pass the raw file contents
// here once they have been decoded into entries.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		clear(b)
		runtime.KeepAlive(b)
	}
}
