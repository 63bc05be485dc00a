//go:build windows

package util

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow      = kernel32.NewProc("GetConsoleWindow")
	procGetConsoleProcessList = kernel32.NewProc("GetConsoleProcessList")
)

var shellExes = []string{
	"bash.exe",
	"cmd.exe",
	"conhost.exe",
	"powershell.exe",
	"pwsh.exe",
	"windowsterminal.exe",
	"wt.exe",
}

// IsRunFromGUI reports whether zmkexport owns its console, which happens when the
// executable is double-clicked instead of started from a shell.
func IsRunFromGUI() bool {
	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd == 0 {
		return true
	}
	attached := consoleProcessCount()
	parent := parentExeName()
	slog.Debug("console ownership", "attached", attached, "parent", parent)

	if slices.Contains(shellExes, strings.ToLower(parent)) {
		return false
	}
	return attached == 1 || strings.EqualFold(parent, "explorer.exe")
}

// consoleProcessCount returns how many processes share this console. The call reports
// the full count even when the buffer is too small to hold every PID.
func consoleProcessCount() int {
	pids := make([]uint32, 4)
	n, _, _ := procGetConsoleProcessList.Call(uintptr(unsafe.Pointer(&pids[0])), uintptr(len(pids)))
	return int(n)
}

func parentExeName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	parentOf := map[uint32]uint32{}
	exeOf := map[uint32]string{}
	entry := windows.ProcessEntry32{Size: uint32(unsafe.Sizeof(windows.ProcessEntry32{}))}
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		parentOf[entry.ProcessID] = entry.ParentProcessID
		exeOf[entry.ProcessID] = windows.UTF16ToString(entry.ExeFile[:])
	}

	ppid, ok := parentOf[uint32(os.Getpid())]
	if !ok || ppid == 0 {
		return ""
	}
	return exeOf[ppid]
}
