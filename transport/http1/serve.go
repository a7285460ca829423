package http1

import (
	"errors"
	"io"

	"github.com/indigo-web/h1stream/config"
	"github.com/indigo-web/h1stream/http"
	"github.com/indigo-web/h1stream/http/status"
	"github.com/indigo-web/h1stream/transport"
)

// Handler processes a single request. The request is valid only during the call.
type Handler func(request *http.Request) error

// Serve reads requests from the client one by one, until the client closes the connection
// or doesn't want to keep it alive anymore. Every request handled without an error is
// answered with an empty 200 OK. If the handler fails, the code of its error is responded
// with and the connection is closed.
func Serve(cfg *config.Config, client transport.Client, handler Handler) error {
	conn := NewConn(cfg, client)

	for {
		request, err := conn.Next()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}

		keepAlive := request.KeepAlive()
		if err = handler(request); err != nil {
			_ = conn.Respond(status.CodeOf(err), true)
			return err
		}

		if err = conn.Respond(status.OK, !keepAlive); err != nil {
			return err
		}

		if !keepAlive {
			return nil
		}
	}
}
