package swatch

import (
	"os/exec"
	"runtime"
)

// Viewer shows a saved image to the user.
type Viewer interface {
	Show(path string) error
}

// ViewerFunc adapts a function to the [Viewer] interface.
type ViewerFunc func(path string) error

func (f ViewerFunc) Show(path string) error {
	return f(path)
}

// SystemViewer opens images with the desktop's default application.
var SystemViewer Viewer = ViewerFunc(openFile)

func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
