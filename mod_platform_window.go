package galaxy

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the shared GLFW window. Width and height are framebuffer
// pixels; Resized is set by the framebuffer callback and cleared by whoever
// reconfigures the surface.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
	Resized      bool
}

func (s *WindowState) Window() *glfw.Window { return s.windowGlfw }

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // no OpenGL context, WebGPU owns the surface
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	s := &WindowState{
		windowGlfw:  win,
		windowTitle: windowTitle,
	}
	s.WindowWidth, s.WindowHeight = win.GetFramebufferSize()
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.WindowWidth = width
		s.WindowHeight = height
		s.Resized = true
	})
	return s, nil
}

func (s *WindowState) destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// PlatformWindowModule creates the shared window. Install is idempotent: an
// existing WindowState resource is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}
	width, height, title := m.Width, m.Height, m.Title
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Galaxy"
	}

	ws, err := createWindowState(width, height, title)
	if err != nil {
		cmd.Logger().Errorf("%v", err)
		panic(err)
	}
	cmd.AddResources(ws)
	cmd.OnShutdown(ws.destroy)
	cmd.Logger().Infof("Created window (%dx%d) '%s'", width, height, title)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
}

func windowEventsSystem(cmd *Commands, s *WindowState) {
	glfw.PollEvents()
	if s.windowGlfw.ShouldClose() {
		cmd.Exit()
	}
}
