// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transmissiontest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2"
	"github.com/juju/errors"

	"github.com/luxfi/transmission"
)

// serviceName is the name the Daemon is registered under.
const serviceName = "Daemon"

// resultUnknownMethod is what the real daemon answers for unknown methods.
const resultUnknownMethod = "method name not recognized"

// envelopeCodec reads Transmission request envelopes and writes response
// envelopes for a gorilla rpc server.
type envelopeCodec struct{}

func (envelopeCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	var env struct {
		Method    string          `json:"method"`
		Arguments json.RawMessage `json:"arguments"`
	}
	err := json.NewDecoder(r.Body).Decode(&env)
	if err != nil {
		err = errors.Annotate(err, "decoding request envelope")
	}
	return &envelopeRequest{method: env.Method, args: env.Arguments, err: err}
}

type envelopeRequest struct {
	method string
	args   json.RawMessage
	err    error
}

// Method maps a wire method such as "torrent-set-location" to the service
// method "Daemon.TorrentSetLocation".
func (c *envelopeRequest) Method() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.method == "" {
		return "", errors.New("no method name")
	}
	return serviceName + "." + goMethodName(c.method), nil
}

func (c *envelopeRequest) ReadRequest(args interface{}) error {
	if c.err != nil {
		return c.err
	}
	if len(c.args) == 0 || string(c.args) == "null" {
		return nil
	}
	return json.Unmarshal(c.args, args)
}

func (c *envelopeRequest) WriteResponse(w http.ResponseWriter, reply interface{}) {
	writeEnvelope(w, reply, transmission.ResultSuccess)
}

// WriteError reports err in the result string. The HTTP status stays 200
// as it does on the real daemon.
func (c *envelopeRequest) WriteError(w http.ResponseWriter, _ int, err error) {
	result := err.Error()
	if strings.HasPrefix(result, "rpc: can't find") {
		result = resultUnknownMethod
	}
	writeEnvelope(w, struct{}{}, result)
}

func writeEnvelope(w http.ResponseWriter, arguments interface{}, result string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	err := json.NewEncoder(w).Encode(struct {
		Arguments interface{} `json:"arguments"`
		Result    string      `json:"result"`
	}{arguments, result})
	if err != nil {
		logger.Errorf("writing response: %v", err)
	}
}

func goMethodName(method string) string {
	var b strings.Builder
	for _, part := range strings.Split(method, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
