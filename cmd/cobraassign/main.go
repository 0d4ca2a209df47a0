// Command cobraassign runs the fiber-positioner target-assignment and
// collision-resolution engine from the command line and over HTTP.
// Grounded on MeKo-Christian-pogo/cmd/ocr's thin-main/cobra-command-tree
// split.
package main

import (
	"github.com/cobraops/cobraops/cmd/cobraassign/cmd"
)

func main() {
	cmd.Execute()
}
