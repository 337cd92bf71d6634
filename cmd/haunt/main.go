// Command haunt lists and checks the ghost rosters of a haunted building.
package main

import "github.com/mesh-intelligence/haunt/internal/cli"

func main() {
	cli.Execute()
}
