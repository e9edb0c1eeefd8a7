// Package apiconnect wires the pricewise services to Connect: procedure
// names, handler constructors and typed clients. Every handler and client
// speaks JSON through api.Codec.
package apiconnect

import (
	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/pkg/api"
)

// Package is the protocol package shared by every service path.
const Package = "pricewise.v1"

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	out := make([]connect.HandlerOption, 0, len(opts)+2)
	for _, c := range api.Codecs() {
		out = append(out, connect.WithCodec(c))
	}
	return append(out, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	out := make([]connect.ClientOption, 0, len(opts)+1)
	out = append(out, connect.WithCodec(api.Codecs()[0]))
	return append(out, opts...)
}
