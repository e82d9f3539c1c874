package codederr

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// NBT transport error codes.
const (
	NBTWarning          = 1000
	NBTSyntaxError      = 1001
	NBTSemanticError    = 1002
	NBTLabelPointer     = 1003 // RFC883 label string pointer encountered
	NBTNoLabelPointer   = 1004 // a label string pointer was expected
	NBTMalformedMessage = 1005
)

// SMB error codes.
const (
	SMBWarning          = 1000
	SMBSyntaxError      = 1001
	SMBSemanticError    = 1002
	SMBProtocolMismatch = 1003 // [<FF>|<FE>]+"SMB" not found
)

var (
	// NBT is the registry for the NetBIOS over TCP/IP transport.
	NBT = NewRegistry("nbt", map[int]string{
		NBTWarning:          "Warning",
		NBTSyntaxError:      "NBT Syntax Error",
		NBTSemanticError:    "NBT Semantic Error",
		NBTLabelPointer:     "Label String Pointer",
		NBTNoLabelPointer:   "No Label String Pointer",
		NBTMalformedMessage: "Malformed Message",
	})

	// SMB is the registry for the SMB1/2/3 protocol layers.
	SMB = NewRegistry("smb", map[int]string{
		SMBWarning:          "Warning",
		SMBSyntaxError:      "SMB Syntax Error",
		SMBSemanticError:    "SMB Semantic Error",
		SMBProtocolMismatch: "SMB Protocol Mismatch",
	})

	suites = map[string]*Registry{
		NBT.Name(): NBT,
		SMB.Name(): SMB,
	}
)

// ErrUnknownSuite is returned when a suite name has no registry.
var ErrUnknownSuite = errors.New("unknown error suite")

// Suite returns the registry registered under name (case-insensitive).
func Suite(name string) (*Registry, error) {
	r, ok := suites[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSuite, "suite %q", name)
	}
	return r, nil
}

// Suites lists the registered suite names in sorted order.
func Suites() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
