package bootstrap

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens url in the default browser without waiting for it.
func OpenBrowser(url string) error {
	return browserCommand(runtime.GOOS, url).Start()
}

func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
