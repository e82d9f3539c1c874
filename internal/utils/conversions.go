package utils

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"github.com/vskvj3/nbtkit/internal/datastructures"
)

// wireError is the msgpack shape of a coded error.
type wireError struct {
	Suite  string `msgpack:"suite"`
	Code   int    `msgpack:"code"`
	Detail string `msgpack:"detail,omitempty"`
}

// EncodeError serializes a coded error so it can be handed to another process
func EncodeError(err *codederr.Error) ([]byte, error) {
	if err == nil {
		return nil, errors.New("cannot encode a nil error")
	}
	return msgpack.Marshal(wireError{
		Suite:  err.Suite(),
		Code:   err.Code,
		Detail: err.Detail,
	})
}

// DecodeError deserializes a coded error, validating its code against the
// named suite.
func DecodeError(data []byte) (*codederr.Error, error) {
	var w wireError
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(err, "failed to decode coded error")
	}

	registry, err := codederr.Suite(w.Suite)
	if err != nil {
		return nil, err
	}
	coded, err := registry.Lookup(w.Code, w.Detail)
	if err != nil {
		return nil, errors.Wrapf(err, "suite %s", w.Suite)
	}
	return coded, nil
}

// EncodeElements serializes the payloads of a list, head to tail.
func EncodeElements(list *datastructures.List[string]) ([]byte, error) {
	values := make([]string, 0)
	for v := range list.Elements() {
		values = append(values, v)
	}
	return msgpack.Marshal(values)
}

// DecodeElements rebuilds a list from EncodeElements output, preserving order.
func DecodeElements(data []byte) (*datastructures.List[string], error) {
	var values []string
	if err := msgpack.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "failed to decode list elements")
	}

	list := datastructures.NewList[string]()
	for _, v := range values {
		list.PushBack(v)
	}
	return list, nil
}
