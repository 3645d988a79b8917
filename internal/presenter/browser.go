package presenter

import (
	"fmt"
	"io"
	"net/url"

	"github.com/pkg/browser"
)

// OpenURL launches the default browser on rawURL. Only http and https are accepted.
func OpenURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("URL scheme must be http or https, got %q", parsed.Scheme)
	}
	return browser.OpenURL(parsed.String())
}

// Connect opens url with open and reports the outcome on out and errOut.
// A failure is reported only; it never becomes the caller's error.
func Connect(out, errOut io.Writer, rawURL string, open func(string) error) {
	fmt.Fprintf(out, "Establishing secure connection to %s...\n", styleLink.Render(rawURL))
	if err := open(rawURL); err != nil {
		fmt.Fprintln(errOut, "Connection failed.")
	}
}

// Terminated reports a cancelled picker.
func Terminated(out io.Writer) {
	fmt.Fprintln(out, styleDim.Render("Session terminated."))
}
