package util

import (
	"bytes"
	"io"
	"os"

	"github.com/yuin/goldmark/ast"
)

// CaptureStdout runs f and returns whatever it printed. goldmark's Dump
// only writes to stdout, so this is how trees end up in logs and commands.
func CaptureStdout(f func()) string {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		f()
		return ""
	}
	os.Stdout = w

	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		out <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old

	return <-out
}

func DumpNode(node ast.Node, source []byte) string {
	return CaptureStdout(func() { node.Dump(source, 0) })
}
