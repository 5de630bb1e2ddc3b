// Libwizard keeps the license headers of a source tree up to date.
package main

import "github.com/mouse-blink/libwizard/cmd"

func main() {
	cmd.Execute()
}
