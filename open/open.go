// Package open hands URLs to the system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Command returns the process that opens target on goos.
func Command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "android":
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Start opens target without waiting for the handler to exit.
func Start(target string) error {
	cmd, err := Command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Resolve makes ref absolute against base. The service returns preview
// links either absolute or relative to its host.
func Resolve(base, ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("no preview link")
	}

	b, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", base, err)
	}

	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", ref, err)
	}

	return b.ResolveReference(r).String(), nil
}
