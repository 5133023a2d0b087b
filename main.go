package main

import "nft-reconciler/cmd"

func main() {
	cmd.Execute()
}
