//go:build js

package main

import (
	"strings"
	"syscall/js"
)

func genRunTestsFunction(this js.Value, p []js.Value) any {
	var out strings.Builder
	g := &generator{Matrix: DefaultMatrix.clone()}
	if err := g.generate(&out); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("genRunTests", js.FuncOf(genRunTestsFunction))

	<-c
}
