// Package platform describes the window-system and graphics-API calls the
// application makes. Implementations live in subpackages.
package platform

import (
	"errors"
	"fmt"
)

// ErrVulkanUnsupported is returned when no Vulkan loader is available.
var ErrVulkanUnsupported = errors.New("vulkan is not supported on this system")

// Version is a Vulkan-style major.minor.patch version.
type Version struct {
	Major, Minor, Patch int
}

// MakeVersion returns the Version major.minor.patch.
func MakeVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// InstanceInfo holds the parameters of a graphics instance.
// Extensions required by the window system are added by the Platform.
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
	Extensions         []string
	Layers             []string
}

// Window is a native window created by a Platform.
type Window interface {
	ShouldClose() bool
	Destroy()
}

// Instance is a graphics-API instance handle.
type Instance interface {
	Destroy()
}

// Platform is the window system plus graphics API.
type Platform interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)
	PollEvents()
	CreateInstance(info InstanceInfo) (Instance, error)
	Terminate()
}
