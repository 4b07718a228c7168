package main

import "github.com/vitandes/innershield/cmd/innershield/root"

func main() {
	root.Execute()
}
