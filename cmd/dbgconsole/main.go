package main

import "github.com/kcaldas/dbgconsole/cmd/cli"

func main() {
	cli.Execute()
}
