package usecase

import "sync/atomic"

// DirtyFlag records that a mutation was sent since the last display refresh.
// The console marks it, the display refresh loop clears it.
type DirtyFlag struct {
	v atomic.Bool
}

func NewDirtyFlag() *DirtyFlag {
	return &DirtyFlag{}
}

func (f *DirtyFlag) Mark() {
	f.v.Store(true)
}

func (f *DirtyFlag) Clear() {
	f.v.Store(false)
}

func (f *DirtyFlag) IsSet() bool {
	return f.v.Load()
}
