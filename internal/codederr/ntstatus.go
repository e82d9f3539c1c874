package codederr

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// NTSTATUS severities, the top two bits of a status code.
const (
	SeveritySuccess = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"Success", "Info", "Warning", "Error"}

// ErrInvalidSeverity is returned by SeverityName for values outside 0..3.
var ErrInvalidSeverity = errors.New("severity out of range")

// NTStatus is one entry of the NTSTATUS table carried in SMB responses.
type NTStatus struct {
	Code uint32
	Name string
	Desc string
}

// String renders the status as "0xC0000022 STATUS_ACCESS_DENIED".
func (s NTStatus) String() string {
	return fmt.Sprintf("0x%08X %s", s.Code, s.Name)
}

// Fields splits the status code into its subfields.
func (s NTStatus) Fields() StatusFields {
	return ParseCode(s.Code)
}

// StatusFields holds the subfields of an NTSTATUS code.
type StatusFields struct {
	Severity int // 0..3, see SeverityName
	Customer int // customer bit, clear in values returned by a server
	Reserved int // N bit, always clear in practice
	Facility int // 12-bit subsystem code
	SubCode  int
}

// ParseCode splits an NTSTATUS value into severity, customer bit, reserved
// bit, facility and sub-code.
func ParseCode(code uint32) StatusFields {
	var f StatusFields
	f.Severity = int(code >> 30)
	if code&0x20000000 != 0 {
		f.Customer = 1
	}
	if code&0x10000000 != 0 {
		f.Reserved = 1
	}
	f.Facility = int((code & 0x0FFF0000) >> 16)
	f.SubCode = int(code & 0x0000FFFF)
	return f
}

// SeverityName returns "Success", "Info", "Warning" or "Error".
func SeverityName(sev int) (string, error) {
	if sev < 0 || sev >= len(severityNames) {
		return "", errors.Wrapf(ErrInvalidSeverity, "severity %d", sev)
	}
	return severityNames[sev], nil
}

var (
	statusByCode map[uint32]NTStatus
	statusByName map[string]NTStatus
)

func init() {
	statusByCode = make(map[uint32]NTStatus, len(ntstatusTable))
	statusByName = make(map[string]NTStatus, len(ntstatusTable))
	for _, s := range ntstatusTable {
		s.Name = strings.ToUpper(s.Name)
		statusByCode[s.Code] = s
		statusByName[s.Name] = s
	}
}

// LookupStatus finds a status by code.
func LookupStatus(code uint32) (NTStatus, bool) {
	s, ok := statusByCode[code]
	return s, ok
}

// LookupStatusName finds a status by name, ignoring case.
func LookupStatusName(name string) (NTStatus, bool) {
	s, ok := statusByName[strings.ToUpper(strings.TrimSpace(name))]
	return s, ok
}

// Statuses returns every known status in ascending code order.
func Statuses() []NTStatus {
	out := make([]NTStatus, 0, len(statusByCode))
	for _, s := range statusByCode {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b NTStatus) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}

// From [MS-ERREF] 2.3.1, restricted to the codes SMB servers return.
var ntstatusTable = []NTStatus{
	{0x00000000, "STATUS_SUCCESS", "The operation completed successfully."},
	{0x00000103, "STATUS_PENDING", "The operation that was requested is pending completion."},
	{0x00000104, "STATUS_REPARSE", "A reparse should be performed by the Object Manager because the name of the file resulted in a symbolic link."},
	{0x0000010B, "STATUS_NOTIFY_CLEANUP", "Indicates that a notify change request has been completed due to closing the handle that made the notify change request."},
	{0x0000010C, "STATUS_NOTIFY_ENUM_DIR", "Indicates that a notify change request is being completed and that the information is not being returned in the caller's buffer. The caller now needs to enumerate the files to find the changes."},
	{0x80000005, "STATUS_BUFFER_OVERFLOW", "Buffer Overflow; The data was too large to fit into the specified buffer."},
	{0x80000006, "STATUS_NO_MORE_FILES", "No more files were found which match the file specification."},
	{0x80000014, "STATUS_EA_LIST_INCONSISTENT", "The extended attribute (EA) list is inconsistent."},
	{0x8000001A, "STATUS_NO_MORE_ENTRIES", "No more entries are available from an enumeration operation."},
	{0x8000002D, "STATUS_STOPPED_ON_SYMLINK", "The create operation stopped after reaching a symbolic link."},
	{0xC0000001, "STATUS_UNSUCCESSFUL", "Operation Failed; The requested operation was unsuccessful."},
	{0xC0000003, "STATUS_INVALID_INFO_CLASS", "Invalid Parameter; The specified information class is not a valid information class for the specified object."},
	{0xC0000004, "STATUS_INFO_LENGTH_MISMATCH", "The specified information record length does not match the length that is required for the specified information class."},
	{0xC0000008, "STATUS_INVALID_HANDLE", "An invalid HANDLE was specified."},
	{0xC000000D, "STATUS_INVALID_PARAMETER", "An invalid parameter was passed to a service or function."},
	{0xC000000F, "STATUS_NO_SUCH_FILE", "File Not Found; The file does not exist."},
	{0xC0000010, "STATUS_INVALID_DEVICE_REQUEST", "The specified request is not a valid operation for the target device."},
	{0xC0000011, "STATUS_END_OF_FILE", "The end-of-file marker has been reached. There is no valid data in the file beyond this marker."},
	{0xC0000016, "STATUS_MORE_PROCESSING_REQUIRED", "Still Busy; The specified I/O request packet (IRP) cannot be disposed of because the I/O operation is not complete."},
	{0xC0000017, "STATUS_NO_MEMORY", "Insufficient Quota; Not enough virtual memory or paging file quota is available to complete the specified operation."},
	{0xC0000022, "STATUS_ACCESS_DENIED", "A process has requested access to an object but has not been granted those access rights."},
	{0xC0000023, "STATUS_BUFFER_TOO_SMALL", "The buffer is too small to contain the entry.  No information has been written to the buffer."},
	{0xC0000033, "STATUS_OBJECT_NAME_INVALID", "The object name is invalid."},
	{0xC0000034, "STATUS_OBJECT_NAME_NOT_FOUND", "The object name is not found."},
	{0xC0000035, "STATUS_OBJECT_NAME_COLLISION", "The object name already exists."},
	{0xC000004F, "STATUS_EAS_NOT_SUPPORTED", "An operation involving EAs failed because the file system does not support EAs."},
	{0xC0000051, "STATUS_NONEXISTENT_EA_ENTRY", "An EA operation failed because the name or EA index is invalid."},
	{0xC0000054, "STATUS_FILE_LOCK_CONFLICT", "A requested read/write cannot be granted due to a conflicting file lock."},
	{0xC0000055, "STATUS_LOCK_NOT_GRANTED", "A requested file lock cannot be granted due to other existing locks."},
	{0xC000005F, "STATUS_NO_SUCH_LOGON_SESSION", "A specified logon session does not exist. It may already have been terminated."},
	{0xC0000064, "STATUS_NO_SUCH_USER", "The specified account does not exist."},
	{0xC000006A, "STATUS_WRONG_PASSWORD", "When trying to update a password, this return status indicates that the value provided as the current password is not correct."},
	{0xC000006C, "STATUS_PASSWORD_RESTRICTION", "When trying to update a password, this status indicates that some password update rule has been violated.  For example, the password may not meet length criteria."},
	{0xC000006D, "STATUS_LOGON_FAILURE", "The attempted logon is invalid.  This is either due to a bad username or authentication information."},
	{0xC000006F, "STATUS_INVALID_LOGON_HOURS", "The user account has time restrictions and may not be logged onto at this time."},
	{0xC0000070, "STATUS_INVALID_WORKSTATION", "The user account is restricted so that it may not be used to log on from the source workstation."},
	{0xC0000071, "STATUS_PASSWORD_EXPIRED", "The user account password has expired."},
	{0xC0000073, "STATUS_NONE_MAPPED", "None of the information to be translated has been translated."},
	{0xC000007C, "STATUS_NO_TOKEN", "An attempt was made to reference a token that does not exist.  This is typically done by referencing the token that is associated with a thread when the thread is not impersonating a client."},
	{0xC000007E, "STATUS_RANGE_NOT_LOCKED", "The range specified in NtUnlockFile was not locked."},
	{0xC000007F, "STATUS_DISK_FULL", "An operation failed because the disk was full."},
	{0xC000009A, "STATUS_INSUFFICIENT_RESOURCES", "Insufficient system resources exist to complete the API."},
	{0xC00000B5, "STATUS_IO_TIMEOUT", "Device Timeout; The specified I/O operation was not completed before the time-out period expired."},
	{0xC00000B6, "STATUS_FILE_FORCED_CLOSED", "The specified file has been closed by another process."},
	{0xC00000BA, "STATUS_FILE_IS_A_DIRECTORY", "The file that was specified as a target is a directory, and the caller specified that it could be anything but a directory."},
	{0xC00000BB, "STATUS_NOT_SUPPORTED", "The request is not supported."},
	{0xC00000C3, "STATUS_INVALID_NETWORK_RESPONSE", "The network responded incorrectly."},
	{0xC00000C9, "STATUS_NETWORK_NAME_DELETED", "The network name was deleted."},
	{0xC00000D0, "STATUS_REQUEST_NOT_ACCEPTED", "No more connections can be made to this remote computer at this time because the computer has already accepted the maximum number of connections."},
	{0xC00000DF, "STATUS_NO_SUCH_DOMAIN", "The specified domain did not exist."},
	{0xC00000E3, "STATUS_INVALID_OPLOCK_PROTOCOL", "An error status returned when an invalid opportunistic lock (oplock) acknowledgment is received by a file system."},
	{0xC00000E5, "STATUS_INTERNAL_ERROR", "An internal error occurred."},
	{0xC0000102, "STATUS_FILE_CORRUPT_ERROR", "Corrupt File; The file or directory is corrupt and unreadable."},
	{0xC0000103, "STATUS_NOT_A_DIRECTORY", "A requested opened file is not a directory."},
	{0xC0000120, "STATUS_CANCELLED", "The I/O request was canceled."},
	{0xC0000128, "STATUS_FILE_CLOSED", "An I/O request other than close and several other special case operations was attempted using a file object that had already been closed."},
	{0xC000014B, "STATUS_PIPE_BROKEN", "The pipe operation has failed because the other end of the pipe has been closed."},
	{0xC000015B, "STATUS_LOGON_TYPE_NOT_GRANTED", "A user has requested a type of logon (for example, interactive or network) that has not been granted. An administrator has control over who may logon interactively and through the network."},
	{0xC0000184, "STATUS_INVALID_DEVICE_STATE", "The device is not in a valid state to perform this request."},
	{0xC000018D, "STATUS_TRUSTED_RELATIONSHIP_FAILURE", "The logon request failed because the trust relationship between this workstation and the primary domain failed."},
	{0xC0000190, "STATUS_TRUST_FAILURE", "The network logon failed. This may be because the validation authority cannot be reached."},
	{0xC0000192, "STATUS_NETLOGON_NOT_STARTED", "An attempt was made to logon, but the NetLogon service was not started."},
	{0xC000019C, "STATUS_FS_DRIVER_REQUIRED", "A volume has been accessed for which a file system driver is required that has not yet been loaded."},
	{0xC0000203, "STATUS_USER_SESSION_DELETED", "The remote user session has been deleted."},
	{0xC000020C, "STATUS_CONNECTION_DISCONNECTED", "The transport connection is now disconnected."},
	{0xC0000224, "STATUS_PASSWORD_MUST_CHANGE", "The user password must be changed before logging on the first time."},
	{0xC000022A, "STATUS_DUPLICATE_OBJECTID", "The attempt to insert the ID in the index failed because the ID is already in the index."},
	{0xC0000233, "STATUS_DOMAIN_CONTROLLER_NOT_FOUND", "A domain controller for this domain was not found."},
	{0xC000023C, "STATUS_NETWORK_UNREACHABLE", "The remote network is not reachable by the transport."},
	{0xC000026E, "STATUS_VOLUME_DISMOUNTED", "An operation was attempted to a volume after it was dismounted."},
	{0xC00002F9, "STATUS_PKINIT_NAME_MISMATCH", "The client certificate does not contain a valid UPN, or does not match the client name in the logon request."},
	{0xC0000320, "STATUS_PKINIT_FAILURE", "The Kerberos protocol encountered an error while validating the KDC certificate during smart card logon. There is more information in the system event log."},
	{0xC000035C, "STATUS_NETWORK_SESSION_EXPIRED", "The client session has expired; The client must re-authenticate to continue accessing the remote resources."},
	{0xC0000380, "STATUS_SMARTCARD_WRONG_PIN", "An incorrect PIN was presented to the smart card."},
	{0xC0000381, "STATUS_SMARTCARD_CARD_BLOCKED", "The smart card is blocked."},
	{0xC0000383, "STATUS_SMARTCARD_NO_CARD", "No smart card is available."},
	{0xC0000388, "STATUS_DOWNGRADE_DETECTED", "The system detected a possible attempt to compromise security.  Ensure that you can contact the server that authenticated you."},
	{0xC000038C, "STATUS_PKINIT_CLIENT_FAILURE", "The smart card certificate used for authentication was not trusted.  Contact your system administrator."},
	{0xC000038F, "STATUS_SMARTCARD_SILENT_CONTEXT", "The smart card provider could not perform the action because the context was acquired as silent."},
	{0xC0000466, "STATUS_SERVER_UNAVAILABLE", "The file server is temporarily unavailable."},
	{0xC0000467, "STATUS_FILE_NOT_AVAILABLE", "The file is temporarily unavailable."},
	{0xC000A100, "STATUS_HASH_NOT_SUPPORTED", "Hash generation for the specified version and hash type is not enabled on server."},
	{0xC000A101, "STATUS_HASH_NOT_PRESENT", "The hash requests is not present or not up to date with the current file contents."},
}
