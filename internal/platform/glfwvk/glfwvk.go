// Package glfwvk implements platform.Platform with GLFW windows and a
// Vulkan instance.
package glfwvk

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"vkhello/internal/platform"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

// Platform drives GLFW and the Vulkan loader.
type Platform struct {
	window   *glfw.Window
	vkLoaded bool
}

var _ platform.Platform = (*Platform)(nil)

// New returns an uninitialized Platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// CreateWindow opens a fixed-size window without a client API, leaving
// presentation to Vulkan.
func (p *Platform) CreateWindow(width, height int, title string) (platform.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	p.window = w
	return &window{w: w, owner: p}, nil
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) CreateInstance(info platform.InstanceInfo) (platform.Instance, error) {
	if err := p.loadVulkan(); err != nil {
		return nil, err
	}
	exts := append([]string{}, info.Extensions...)
	if p.window != nil {
		exts = append(exts, p.window.GetRequiredInstanceExtensions()...)
	}
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.ApplicationName),
		ApplicationVersion: makeVersion(info.ApplicationVersion),
		PEngineName:        safeString(info.EngineName),
		EngineVersion:      makeVersion(info.EngineVersion),
		ApiVersion:         makeVersion(info.APIVersion),
	}
	createInfo := &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(exts)),
		PpEnabledExtensionNames: safeStrings(exts),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}
	var inst vk.Instance
	if err := vk.Error(vk.CreateInstance(createInfo, nil, &inst)); err != nil {
		return nil, fmt.Errorf("vkCreateInstance: %w", err)
	}
	return instance{h: inst}, nil
}

func (p *Platform) Terminate() {
	glfw.Terminate()
	p.window = nil
}

// loadVulkan points the loader at GLFW's vkGetInstanceProcAddr once.
func (p *Platform) loadVulkan() error {
	if p.vkLoaded {
		return nil
	}
	if !glfw.VulkanSupported() {
		return platform.ErrVulkanUnsupported
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return fmt.Errorf("vulkan init: %w", err)
	}
	p.vkLoaded = true
	return nil
}

type window struct {
	w     *glfw.Window
	owner *Platform
}

func (w *window) ShouldClose() bool { return w.w.ShouldClose() }

func (w *window) Destroy() {
	if w.owner.window == w.w {
		w.owner.window = nil
	}
	w.w.Destroy()
}

type instance struct {
	h vk.Instance
}

func (i instance) Destroy() { vk.DestroyInstance(i.h, nil) }

func makeVersion(v platform.Version) uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

// safeString terminates s with NUL as the C API expects.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, safeString(s))
	}
	return out
}
