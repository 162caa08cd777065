// SPDX-License-Identifier: Apache-2.0

package main

import "rexi/cmd/cli"

func main() {
	cli.RunCLI()
}
