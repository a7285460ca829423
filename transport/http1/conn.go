package http1

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/indigo-web/h1stream/config"
	"github.com/indigo-web/h1stream/http"
	"github.com/indigo-web/h1stream/http/span"
	"github.com/indigo-web/h1stream/http/status"
	"github.com/indigo-web/h1stream/internal/buffer"
	"github.com/indigo-web/h1stream/kv"
	"github.com/indigo-web/h1stream/parser"
	h1parser "github.com/indigo-web/h1stream/parser/http1"
	"github.com/indigo-web/h1stream/transport"
	"github.com/indigo-web/utils/uf"
)

// Conn reads requests from a single client. It owns the read buffer, which grows as data
// arrives and is compacted only between requests, as the parser state refers to it by offsets.
// Everything the request must keep is copied out of the buffer as soon as it's parsed.
type Conn struct {
	cfg      *config.Config
	client   transport.Client
	state    *h1parser.State
	buff     []byte
	arena    buffer.Buffer
	respBuff []byte
	request  *http.Request
}

func NewConn(cfg *config.Config, client transport.Client) *Conn {
	return &Conn{
		cfg:     cfg,
		client:  client,
		state:   h1parser.NewState(),
		buff:    make([]byte, 0, cfg.URI.RequestLineSize.Default),
		arena:   buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
		request: http.NewRequest(kv.NewPrealloc(cfg.Headers.Number.Default), client.Remote()),
	}
}

// Next reads the next request from the client. The returned request is reused, so it's valid
// only until the following call. io.EOF is returned if the client closed the connection
// gracefully, i.e. between requests. If the request is malformed, an error response is sent
// to the client before returning the error, so the caller has nothing to do but close the
// connection.
func (c *Conn) Next() (*http.Request, error) {
	c.prepare()

	_, err := c.advance(h1parser.ParseRequestLine, c.cfg.URI.RequestLineSize.Maximal, status.ErrURITooLong)
	if err != nil {
		return nil, err
	}

	c.copyRequestLine()

	headLimit := c.cfg.URI.RequestLineSize.Maximal + c.cfg.Headers.Space.Maximal
	for {
		result, err := c.advance(h1parser.ParseHeaderLine, headLimit, status.ErrHeaderFieldsTooLarge)
		if err != nil {
			return nil, err
		}

		if result == parser.CRLFLine {
			break
		}

		if c.state.NumHeaders > c.cfg.Headers.Number.Maximal {
			return nil, c.reject(status.ErrTooManyHeaders)
		}

		if err = c.copyHeader(); err != nil {
			return nil, c.reject(err)
		}
	}

	if err = c.prepareBody(); err != nil {
		return nil, c.reject(err)
	}

	for {
		result, err := c.advance(h1parser.ReadIdentityBody, 0, nil)
		if err != nil {
			return nil, err
		}

		c.request.Body = append(c.request.Body, c.state.Body.Bytes(c.buff)...)
		if result == parser.OK {
			return c.request, nil
		}
	}
}

// Respond writes a response with no body.
func (c *Conn) Respond(code status.Code, closeConn bool) error {
	c.respBuff = append(c.respBuff[:0], "HTTP/1.1 "...)
	c.respBuff = append(c.respBuff, status.StringCode(code)...)
	c.respBuff = append(c.respBuff, ' ')
	c.respBuff = append(c.respBuff, status.Text(code)...)
	c.respBuff = append(c.respBuff, "\r\nContent-Length: 0\r\n"...)
	if closeConn {
		c.respBuff = append(c.respBuff, "Connection: close\r\n"...)
	}

	c.respBuff = append(c.respBuff, "\r\n"...)
	_, err := c.client.Write(c.respBuff)

	return err
}

// prepare resets everything for the next request. This is the only moment the read buffer
// may be compacted, as no spans into it are alive.
func (c *Conn) prepare() {
	c.state.Reset()
	if n := c.state.Cursor; n > 0 {
		c.buff = c.buff[:copy(c.buff, c.buff[n:])]
		c.state.Shift(n)
	}

	c.arena.Clear()
	c.request.Reset()
}

// advance calls the phase until it's done, reading more data every time it asks for it. The
// limit restricts how big may the read buffer grow during the phase, zero disables it.
func (c *Conn) advance(phase h1parser.Phase, limit int, overflow error) (parser.Result, error) {
	for {
		result, err := phase(c.buff, c.state)
		switch result {
		case parser.Again:
		case parser.InvalidRequest:
			return result, c.reject(err)
		default:
			// the phase might complete within a single read, which may overshoot the limit
			if limit > 0 && c.state.Cursor > limit {
				return parser.InvalidRequest, c.reject(overflow)
			}

			return result, nil
		}

		if limit > 0 && len(c.buff) >= limit {
			return parser.InvalidRequest, c.reject(overflow)
		}

		if err = c.fill(); err != nil {
			return parser.InvalidRequest, err
		}
	}
}

func (c *Conn) fill() error {
	data, err := c.client.Read()
	c.buff = append(c.buff, data...)
	if err == nil || len(data) > 0 {
		return nil
	}

	idle := c.state.AtRequestLine()

	if errors.Is(err, io.EOF) {
		if idle {
			return io.EOF
		}

		return io.ErrUnexpectedEOF
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && !idle {
		_ = c.Respond(status.RequestTimeout, true)
	}

	return fmt.Errorf("read: %w", err)
}

func (c *Conn) reject(err error) error {
	if writeErr := c.Respond(status.CodeOf(err), true); writeErr != nil {
		return fmt.Errorf("%w (responding: %s)", err, writeErr.Error())
	}

	return err
}

// copyRequestLine copies the URL, as the request line spans aren't valid after the read
// buffer is compacted. Parts of the URL are sub-slices of the single copy.
func (c *Conn) copyRequestLine() {
	url := c.state.URL
	raw := string(url.Raw.Bytes(c.buff))
	relative := func(s span.Span) string {
		return raw[s.Offset-url.Raw.Offset : s.End()-url.Raw.Offset]
	}

	c.request.Method = c.state.Method
	c.request.Version = c.state.Version
	c.request.RawURL = raw
	c.request.Path = relative(url.Path)
	c.request.Query = relative(url.Query)
	c.request.Ext = relative(url.Ext)
}

// copyHeader moves the header slot into the headers storage. It must be done before the
// next header line is parsed, as it overwrites the slot.
func (c *Conn) copyHeader() error {
	name, value := c.state.Header(c.buff)
	key, ok := c.arena.Copy(name)
	if !ok {
		return status.ErrHeaderFieldsTooLarge
	}

	val, ok := c.arena.Copy(value)
	if !ok {
		return status.ErrHeaderFieldsTooLarge
	}

	c.request.Headers.Add(uf.B2S(key), uf.B2S(val))
	return nil
}

func (c *Conn) prepareBody() error {
	if c.request.Headers.Has("transfer-encoding") {
		return status.ErrUnsupportedEncoding
	}

	length, err := contentLength(c.request.Headers)
	if err != nil {
		return err
	}

	if length > c.cfg.Body.MaxSize {
		return status.ErrBodyTooLarge
	}

	c.state.ContentLength = length
	c.request.ContentLength = length

	return nil
}
