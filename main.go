package main

import "github.com/ivco-ai/blogsync/cmd"

func main() {
	cmd.Execute()
}
