package vec

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Debug-mode double-return detection. Off by default so the rent/return
// hot path stays lock-free; tests flip it on with SetDebug. Enable it
// before renting, rents made while it was off may be reported as double
// returns.
var (
	debugOn   atomic.Bool
	debugMu   sync.Mutex
	debugLive = map[uintptr]struct{}{}
)

// SetDebug toggles outstanding-buffer tracking.
func SetDebug(on bool) {
	debugMu.Lock()
	if on && !debugOn.Load() {
		debugLive = map[uintptr]struct{}{}
	}
	debugOn.Store(on)
	debugMu.Unlock()
}

func trackRent[E Element](buf []E) {
	if !debugOn.Load() || len(buf) == 0 {
		return
	}
	debugMu.Lock()
	debugLive[uintptr(unsafe.Pointer(&buf[0]))] = struct{}{}
	debugMu.Unlock()
}

func trackReturn[E Element](buf []E) {
	if !debugOn.Load() || len(buf) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&buf[0]))
	debugMu.Lock()
	_, live := debugLive[key]
	delete(debugLive, key)
	debugMu.Unlock()
	if !live {
		panic(panicDoubleFree)
	}
}

// Outstanding reports how many tracked buffers are rented and not yet
// returned. Zero when debug mode is off.
func Outstanding() int {
	debugMu.Lock()
	n := len(debugLive)
	debugMu.Unlock()
	return n
}
