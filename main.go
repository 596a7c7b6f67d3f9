package main

import "github.com/santaclaude2025/scrub/cmd"

func main() {
	cmd.Execute()
}
