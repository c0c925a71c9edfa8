package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Open hands rawURL to the system opener. Only http, https and mailto are allowed.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
	default:
		return fmt.Errorf("refusing to open URL with scheme %q (only http, https, mailto allowed)", u.Scheme)
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		// rundll32 avoids cmd /c start shell interpretation.
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}
