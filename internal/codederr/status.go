package codederr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Keys of the structpb detail attached to statuses built by ToStatus.
const (
	detailSuite  = "suite"
	detailCode   = "code"
	detailLabel  = "label"
	detailDetail = "detail"
)

// GRPCCode maps a coded error onto the closest gRPC status code.
func GRPCCode(e *Error) codes.Code {
	switch {
	case e == nil:
		return codes.OK
	case e.IsWarning():
		return codes.FailedPrecondition
	case e.registry == SMB && e.Code == SMBProtocolMismatch:
		return codes.Unimplemented
	default:
		return codes.InvalidArgument
	}
}

// ToStatus converts err into a gRPC status. Coded errors carry their suite,
// code, label and detail in a structpb detail so FromStatus can rebuild
// them on the other side; any other error maps to codes.Unknown.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	coded, ok := As(err)
	if !ok {
		return status.New(codes.Unknown, err.Error())
	}

	st := status.New(GRPCCode(coded), coded.Error())
	detail, derr := structpb.NewStruct(map[string]interface{}{
		detailSuite:  coded.Suite(),
		detailCode:   coded.Code,
		detailLabel:  coded.Label,
		detailDetail: coded.Detail,
	})
	if derr != nil {
		return st
	}
	if with, werr := st.WithDetails(detail); werr == nil {
		return with
	}
	return st
}

// FromStatus rebuilds the coded error carried by st, if any.
func FromStatus(st *status.Status) (*Error, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := s.GetFields()
		suite, err := Suite(fields[detailSuite].GetStringValue())
		if err != nil {
			continue
		}
		codeValue, ok := fields[detailCode]
		if !ok {
			continue
		}
		coded, err := suite.Lookup(int(codeValue.GetNumberValue()), fields[detailDetail].GetStringValue())
		if err != nil {
			continue
		}
		return coded, true
	}
	return nil, false
}
