package appearance

import (
	"os"
	"testing"

	"golang.design/x/mainthread"
)

func TestMain(m *testing.M) {
	mainthread.Init(func() { os.Exit(m.Run()) })
}
