package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Validate accepts absolute http and https URLs only. Provider links and
// live stream URLs come from third parties and are checked before launch.
func Validate(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("no link available")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

// Open launches the system browser on rawURL without waiting for it.
func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	return command(rawURL).Start()
}

func command(rawURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		// Use rundll32 instead of cmd /c start to avoid shell interpretation
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}
