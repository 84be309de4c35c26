//go:build noglfw

package cli

import (
	"errors"

	"vkhello/internal/platform"
)

// errNoWindowSystem is reported by binaries built with -tags noglfw.
var errNoWindowSystem = errors.New("built without a window system (noglfw)")

var newPlatform = func() platform.Platform { return headless{} }

// headless fails at Init so the run stops before any window is requested.
type headless struct{}

func (headless) Init() error { return errNoWindowSystem }
func (headless) CreateWindow(int, int, string) (platform.Window, error) {
	return nil, errNoWindowSystem
}
func (headless) PollEvents() {}
func (headless) CreateInstance(platform.InstanceInfo) (platform.Instance, error) {
	return nil, errNoWindowSystem
}
func (headless) Terminate() {}
