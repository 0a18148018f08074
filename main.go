package main

import "github.com/wimf/labelscan/cmd/labelscan"

func main() {
	labelscan.Execute()
}
