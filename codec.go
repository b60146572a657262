// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmission

import (
	"encoding/json"
)

// Codec encodes request envelopes and decodes response envelopes.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

// JSONCodec is the wire codec of the Transmission RPC protocol.
type JSONCodec struct{}

func (JSONCodec) Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// defaultCodec is used when no codec is specified
var defaultCodec Codec = JSONCodec{}

// ResultSuccess is the only result string that reports success.
const ResultSuccess = "success"

// Request is the envelope sent for every call. A nil Arguments is left out
// of the encoded document.
type Request struct {
	Method    Method      `json:"method"`
	Arguments interface{} `json:"arguments,omitempty"`
}

// Response is the envelope returned for every call. A failed call still
// decodes: Result carries the server's message and Arguments is usually
// the zero value.
type Response[T any] struct {
	Arguments T      `json:"arguments"`
	Result    string `json:"result"`
}

// IsOK reports whether the server executed the call.
func (r *Response[T]) IsOK() bool {
	return r.Result == ResultSuccess
}

// Nothing is the result type of methods whose arguments carry no data.
type Nothing struct{}

// EncodeRequest serializes req with c.
func EncodeRequest(c Codec, req *Request) ([]byte, error) {
	if c == nil {
		c = defaultCodec
	}
	body, err := c.Encode(req)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// DecodeResponse parses a response envelope whose arguments have type T.
func DecodeResponse[T any](c Codec, data []byte) (*Response[T], error) {
	if c == nil {
		c = defaultCodec
	}
	var resp Response[T]
	if err := c.Decode(data, &resp); err != nil {
		return nil, withKind(ErrDecode, err)
	}
	return &resp, nil
}
