//go:build windows

package bcd

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	seeMaskNoCloseProcess = 0x00000040
	seeMaskNoAsync        = 0x00000100
	seeMaskFlagNoUI       = 0x00000400
)

var (
	modshell32          = windows.NewLazySystemDLL("shell32.dll")
	procShellExecuteExW = modshell32.NewProc("ShellExecuteExW")
)

// shellExecuteInfo mirrors SHELLEXECUTEINFOW.
type shellExecuteInfo struct {
	cbSize         uint32
	fMask          uint32
	hwnd           windows.Handle
	lpVerb         *uint16
	lpFile         *uint16
	lpParameters   *uint16
	lpDirectory    *uint16
	nShow          int32
	hInstApp       windows.Handle
	lpIDList       uintptr
	lpClass        *uint16
	hkeyClass      windows.Handle
	dwHotKey       uint32
	hIconOrMonitor windows.Handle
	hProcess       windows.Handle
}

// processElevated reports whether this process holds an elevated token.
var processElevated = func() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// runElevated starts the tool with the runas verb and waits for it. When
// this process already holds an elevated token the tool inherits it, so a
// plain capturing launch is used instead and output is not lost.
func runElevated(path string, args []string) (Launch, error) {
	if processElevated() {
		return runCaptured(path, args)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return Launch{}, err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Launch{}, err
	}
	params, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(args))
	if err != nil {
		return Launch{}, err
	}

	info := shellExecuteInfo{
		fMask:        seeMaskNoCloseProcess | seeMaskNoAsync | seeMaskFlagNoUI,
		lpVerb:       verb,
		lpFile:       file,
		lpParameters: params,
		nShow:        windows.SW_HIDE,
	}
	info.cbSize = uint32(unsafe.Sizeof(info))

	ok, _, callErr := procShellExecuteExW.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return Launch{}, fmt.Errorf("ShellExecuteExW %s: %w", path, callErr)
	}
	if info.hProcess == 0 {
		return Launch{}, fmt.Errorf("ShellExecuteExW %s: no process handle", path)
	}
	defer func() {
		_ = windows.CloseHandle(info.hProcess)
	}()

	if _, err := windows.WaitForSingleObject(info.hProcess, windows.INFINITE); err != nil {
		return Launch{}, fmt.Errorf("wait for %s: %w", path, err)
	}
	var code uint32
	if err := windows.GetExitCodeProcess(info.hProcess, &code); err != nil {
		return Launch{}, fmt.Errorf("exit code for %s: %w", path, err)
	}
	return Launch{ExitCode: int(code)}, nil
}
