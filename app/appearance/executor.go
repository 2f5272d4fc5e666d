package appearance

import (
	"golang.design/x/mainthread"
)

// Executor runs functions on the single UI-owning context and blocks until they return.
// The automation bridge is not safe to call from arbitrary threads.
type Executor interface {
	Call(fn func())
}

// MainThread runs calls on the process main thread, one at a time.
// main has to hand the thread over with mainthread.Init before any Call.
type MainThread struct{}

// Call runs fn on the main thread. A panic in fn is re-raised in the caller.
func (MainThread) Call(fn func()) {
	var recovered any
	mainthread.Call(func() {
		defer func() { recovered = recover() }()
		fn()
	})
	if recovered != nil {
		panic(recovered)
	}
}
