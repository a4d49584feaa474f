package maple

import (
	"fmt"

	"github.com/ardnew/softmaple/pkg"
)

// ResponseCode is the signed status a device returns in the command byte
// of a response frame.
type ResponseCode int8

// Response codes.
const (
	RespFileError    ResponseCode = -5 // File system error on the device
	RespAgain        ResponseCode = -4 // Resend the command
	RespBadCommand   ResponseCode = -3 // Command not recognized
	RespBadFunction  ResponseCode = -2 // Function not supported
	RespNone         ResponseCode = -1 // No device answered
	RespDeviceInfo   ResponseCode = 5  // Payload is device information
	RespAllInfo      ResponseCode = 6  // Payload is extended device information
	RespOK           ResponseCode = 7  // Command accepted, no payload
	RespDataTransfer ResponseCode = 8  // Payload is function data
)

// responseOffset maps the lowest response code onto index 0 of
// responseNames.
const responseOffset = 5

var responseNames = [...]string{
	"FileError",
	"AgainError",
	"BadCommand",
	"BadFunction",
	"None",
	"", "", "", "", "",
	"DeviceInfo",
	"AllDeviceInfo",
	"Ok",
	"DataTransfer",
}

// TranslateResponse returns the name of a response code, or "Unknown" for
// any value without one.
func TranslateResponse(code int32) string {
	i := int64(code) + responseOffset
	if i < 0 || i >= int64(len(responseNames)) || responseNames[i] == "" {
		return "Unknown"
	}
	return responseNames[i]
}

// String returns TranslateResponse(int32(r)).
func (r ResponseCode) String() string {
	return TranslateResponse(int32(r))
}

// IsError reports whether r is one of the negative error codes.
func (r ResponseCode) IsError() bool {
	return r < 0
}

// Err returns the sentinel error for a negative response code, nil for a
// success code, and pkg.ErrInvalidParameter wrapped with the value for a
// code with no meaning.
func (r ResponseCode) Err() error {
	switch r {
	case RespFileError:
		return pkg.ErrFileError
	case RespAgain:
		return pkg.ErrAgain
	case RespBadCommand:
		return pkg.ErrBadCommand
	case RespBadFunction:
		return pkg.ErrBadFunction
	case RespNone:
		return pkg.ErrNoResponse
	case RespDeviceInfo, RespAllInfo, RespOK, RespDataTransfer:
		return nil
	default:
		return fmt.Errorf("%w: response code %d", pkg.ErrInvalidParameter, r)
	}
}

// Command is a host-to-device command code.
type Command uint8

// Command codes.
const (
	CmdDeviceInfo    Command = 1  // Request device information
	CmdAllInfo       Command = 2  // Request extended device information
	CmdReset         Command = 3  // Reset the device
	CmdKill          Command = 4  // Shut the device down
	CmdGetCondition  Command = 9  // Read function condition (buttons, etc.)
	CmdGetMemoryInfo Command = 10 // Read storage geometry
	CmdBlockRead     Command = 11 // Read a storage block
	CmdBlockWrite    Command = 12 // Write a storage block
	CmdBlockSync     Command = 13 // Commit a block write
	CmdSetCondition  Command = 14 // Write function condition (vibration, etc.)
	CmdMicControl    Command = 15 // Microphone control
	CmdCameraControl Command = 17 // Camera control
)

// String returns the command mnemonic.
func (c Command) String() string {
	switch c {
	case CmdDeviceInfo:
		return "DeviceInfo"
	case CmdAllInfo:
		return "AllInfo"
	case CmdReset:
		return "Reset"
	case CmdKill:
		return "Kill"
	case CmdGetCondition:
		return "GetCondition"
	case CmdGetMemoryInfo:
		return "GetMemoryInfo"
	case CmdBlockRead:
		return "BlockRead"
	case CmdBlockWrite:
		return "BlockWrite"
	case CmdBlockSync:
		return "BlockSync"
	case CmdSetCondition:
		return "SetCondition"
	case CmdMicControl:
		return "MicControl"
	case CmdCameraControl:
		return "CameraControl"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}
