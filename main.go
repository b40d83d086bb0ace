// SPDX-License-Identifier: MPL-2.0

package main

import cmd "easysql-launcher/cmd/easysql-launcher"

func main() {
	cmd.Execute()
}
