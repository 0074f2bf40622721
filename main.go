package main

import "github.com/sadopc/clientflow/internal/cli"

func main() {
	cli.Execute()
}
