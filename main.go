package main

import "topology-manager/cmd"

func main() {
	cmd.Execute()
}
