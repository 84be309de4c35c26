//go:build !noglfw

package cli

import (
	"vkhello/internal/platform"
	"vkhello/internal/platform/glfwvk"
)

// newPlatform is replaced in tests.
var newPlatform = func() platform.Platform { return glfwvk.New() }
