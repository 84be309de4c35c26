// Package platformtest provides an in-memory platform.Platform for tests.
package platformtest

import (
	"vkhello/internal/platform"
)

// Fake records calls and closes its window after a fixed number of polls.
type Fake struct {
	InitErr     error
	WindowErr   error
	InstanceErr error

	// CloseAfter is the number of PollEvents calls after which the window
	// reports ShouldClose. Negative keeps the window open.
	CloseAfter int

	Calls    []string
	Polls    int
	Instance platform.InstanceInfo

	WindowDestroyed   bool
	InstanceDestroyed bool
	Terminated        bool

	// OnPoll runs on every PollEvents call.
	OnPoll func()
}

var _ platform.Platform = (*Fake)(nil)

func (f *Fake) Init() error {
	f.Calls = append(f.Calls, "init")
	return f.InitErr
}

func (f *Fake) CreateWindow(width, height int, title string) (platform.Window, error) {
	f.Calls = append(f.Calls, "window")
	if f.WindowErr != nil {
		return nil, f.WindowErr
	}
	return &window{f: f}, nil
}

func (f *Fake) PollEvents() {
	f.Polls++
	if f.OnPoll != nil {
		f.OnPoll()
	}
}

func (f *Fake) CreateInstance(info platform.InstanceInfo) (platform.Instance, error) {
	f.Calls = append(f.Calls, "instance")
	f.Instance = info
	if f.InstanceErr != nil {
		return nil, f.InstanceErr
	}
	return &instance{f: f}, nil
}

func (f *Fake) Terminate() {
	f.Calls = append(f.Calls, "terminate")
	f.Terminated = true
}

type window struct{ f *Fake }

func (w *window) ShouldClose() bool {
	return w.f.CloseAfter >= 0 && w.f.Polls >= w.f.CloseAfter
}

func (w *window) Destroy() {
	w.f.Calls = append(w.f.Calls, "destroy-window")
	w.f.WindowDestroyed = true
}

type instance struct{ f *Fake }

func (i *instance) Destroy() {
	i.f.Calls = append(i.f.Calls, "destroy-instance")
	i.f.InstanceDestroyed = true
}
