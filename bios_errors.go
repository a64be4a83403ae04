// bios_errors.go - Error taxonomy returned to the OS

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package main

import (
	"errors"
	"fmt"
)

// BIOSErrorKind matches the tag of the C bios_error_t.
type BIOSErrorKind uint32

const (
	ErrKindUnimplemented BIOSErrorKind = iota
	ErrKindInvalidDevice
	ErrKindDeviceError
	ErrKindUnsupportedConfiguration
	ErrKindNoMediaFound
	ErrKindBlockOutOfBounds
)

// BIOSError is the only failure the OS ever sees. Code is meaningful for
// DeviceError and UnsupportedConfiguration.
type BIOSError struct {
	Kind BIOSErrorKind
	Code uint16
}

func (e *BIOSError) Error() string {
	switch e.Kind {
	case ErrKindUnimplemented:
		return "unimplemented"
	case ErrKindInvalidDevice:
		return "invalid device"
	case ErrKindDeviceError:
		return fmt.Sprintf("device error %d", e.Code)
	case ErrKindUnsupportedConfiguration:
		return fmt.Sprintf("unsupported configuration 0x%04X", e.Code)
	case ErrKindNoMediaFound:
		return "no media found"
	case ErrKindBlockOutOfBounds:
		return "block out of bounds"
	}
	return fmt.Sprintf("bios error %d", e.Kind)
}

// Is matches on kind and code so sentinel comparisons work with errors.Is.
func (e *BIOSError) Is(target error) bool {
	var t *BIOSError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

var (
	ErrUnimplemented    = &BIOSError{Kind: ErrKindUnimplemented}
	ErrInvalidDevice    = &BIOSError{Kind: ErrKindInvalidDevice}
	ErrNoMediaFound     = &BIOSError{Kind: ErrKindNoMediaFound}
	ErrBlockOutOfBounds = &BIOSError{Kind: ErrKindBlockOutOfBounds}
)

func DeviceError(code uint16) *BIOSError {
	return &BIOSError{Kind: ErrKindDeviceError, Code: code}
}

func UnsupportedConfiguration(code uint16) *BIOSError {
	return &BIOSError{Kind: ErrKindUnsupportedConfiguration, Code: code}
}

// asBIOSError folds any error into the guest-visible taxonomy.
func asBIOSError(err error) *BIOSError {
	if err == nil {
		return nil
	}
	var be *BIOSError
	if errors.As(err, &be) {
		return be
	}
	return DeviceError(BLOCK_ERR_IO)
}

// GuestError provides context for failures loading or entering the OS.
type GuestError struct {
	Operation string
	Details   string
	Err       error
}

func (e *GuestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("guest %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("guest %s failed: %s", e.Operation, e.Details)
}

func (e *GuestError) Unwrap() error { return e.Err }

// ConfigError reports an invalid command line.
type ConfigError struct {
	Flag    string
	Details string
}

func (e *ConfigError) Error() string {
	if e.Flag == "" {
		return e.Details
	}
	return fmt.Sprintf("-%s: %s", e.Flag, e.Details)
}

// contractViolation is the panic value raised when the OS breaks a rule
// the hardware cannot report, such as touching memory outside video RAM.
type contractViolation struct {
	What string
}

func (c contractViolation) String() string {
	return "BIOS contract violation: " + c.What
}

func violate(format string, args ...any) {
	panic(contractViolation{What: fmt.Sprintf(format, args...)})
}
