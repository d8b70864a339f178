package main

import "github.com/mvp-joe/osstatus-generator/internal/cli"

func main() {
	cli.Execute()
}
