package main

import "github.com/noesisnoema/pbxmend/cmd"

func main() {
	cmd.Execute()
}
