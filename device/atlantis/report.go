package atlantis

import (
	"encoding/binary"
	"fmt"

	"github.com/atlantiscfg/atlantiscfg/device"
)

// ReportID is the fixed HID report ID every Atlantis-family report uses.
const ReportID uint8 = 0x08

// reportLength is the fixed size, in bytes, of a StandardReport.
const reportLength = 17

// dataCapacity is the number of data bytes a single report can carry.
const dataCapacity = 10

// Command identifies the operation a StandardReport requests or answers.
type Command uint8

const (
	// WriteProfileData writes bytes into profile memory at an address.
	WriteProfileData Command = 7
	// ReadProfileData reads bytes from profile memory at an address.
	ReadProfileData Command = 8
	// ReadActiveProfile reads the currently active profile index.
	ReadActiveProfile Command = 14
	// WriteActiveProfile sets the currently active profile index.
	WriteActiveProfile Command = 15
)

func (c Command) String() string {
	switch c {
	case WriteProfileData:
		return "write_profile_data"
	case ReadProfileData:
		return "read_profile_data"
	case ReadActiveProfile:
		return "read_active_profile"
	case WriteActiveProfile:
		return "write_active_profile"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

func validCommand(c Command) bool {
	switch c {
	case WriteProfileData, ReadProfileData, ReadActiveProfile, WriteActiveProfile:
		return true
	default:
		return false
	}
}

// StandardReport is the 17-byte HID report every request and response is
// framed as.
type StandardReport struct {
	Command Command
	Error   uint8
	Address uint16
	Length  uint8
	Data    [dataCapacity]byte
}

// NewReadProfileData builds a request to read length bytes (≤10) from
// profile memory starting at address.
func NewReadProfileData(address uint16, length uint8) StandardReport {
	return StandardReport{Command: ReadProfileData, Address: address, Length: length}
}

// NewWriteProfileData builds a request to write data (≤10 bytes) to profile
// memory starting at address.
func NewWriteProfileData(address uint16, data []byte) StandardReport {
	r := StandardReport{Command: WriteProfileData, Address: address, Length: uint8(len(data))}
	copy(r.Data[:], data)
	return r
}

// NewReadActiveProfile builds a request for the currently active profile
// index.
func NewReadActiveProfile() StandardReport {
	return StandardReport{Command: ReadActiveProfile}
}

// NewWriteActiveProfile builds a request to set the active profile index.
func NewWriteActiveProfile(index uint8) StandardReport {
	r := StandardReport{Command: WriteActiveProfile, Length: 1}
	r.Data[0] = index
	return r
}

// IsValidResponseFor reports whether resp answers the request req: a
// response is valid for a request iff their command bytes match.
func (req StandardReport) IsValidResponseFor(resp StandardReport) bool {
	return req.Command == resp.Command
}

// Encode serialises r to the 17-byte wire form, including the packet
// checksum.
func (r StandardReport) Encode() [reportLength]byte {
	var buf [reportLength]byte
	buf[0] = ReportID
	buf[1] = uint8(r.Command)
	buf[2] = r.Error
	binary.BigEndian.PutUint16(buf[3:5], r.Address)
	buf[5] = r.Length
	copy(buf[6:16], r.Data[:])
	buf[16] = checksumOf(packetChecksumInit, buf[:16])
	return buf
}

// DecodeReport parses a 17-byte wire report, validating the report ID,
// packet checksum, and command byte.
func DecodeReport(buf []byte) (StandardReport, error) {
	if len(buf) != reportLength {
		return StandardReport{}, device.UnexpectedReport(fmt.Sprintf("report length %d, want %d", len(buf), reportLength))
	}
	if buf[0] != ReportID {
		return StandardReport{}, device.UnexpectedReport(fmt.Sprintf("report id 0x%02x, want 0x%02x", buf[0], ReportID))
	}
	if !validChecksum(packetChecksumInit, buf) {
		return StandardReport{}, device.BadChecksum("packet checksum")
	}

	cmd := Command(buf[1])
	if !validCommand(cmd) {
		return StandardReport{}, device.UnexpectedReport(fmt.Sprintf("unknown command byte 0x%02x", buf[1]))
	}

	r := StandardReport{
		Command: cmd,
		Error:   buf[2],
		Address: binary.BigEndian.Uint16(buf[3:5]),
		Length:  buf[5],
	}
	copy(r.Data[:], buf[6:16])
	return r, nil
}
