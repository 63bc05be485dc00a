//go:build windows

package main

import "github.com/Alia5/zmkexport/internal/util"

func init() {
	pauseOnExit = util.IsRunFromGUI()
}
