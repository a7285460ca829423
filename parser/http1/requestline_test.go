package http1

import (
	"testing"

	"github.com/indigo-web/h1stream/http/method"
	"github.com/indigo-web/h1stream/http/proto"
	"github.com/indigo-web/h1stream/http/status"
	"github.com/indigo-web/h1stream/parser"
	"github.com/stretchr/testify/require"
)

func TestParseRequestLine(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		data := []byte("GET /a/b.txt?x=1 HTTP/1.1\r\n")
		s := NewState()
		result, err := ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.OK, result)
		require.Equal(t, method.GET, s.Method)
		require.Equal(t, proto.HTTP11, s.Version)
		require.Equal(t, "/a/b.txt?x=1", s.URL.Raw.String(data))
		require.Equal(t, "/a/b.txt", s.URL.Path.String(data))
		require.Equal(t, "x=1", s.URL.Query.String(data))
		require.Equal(t, "txt", s.URL.Ext.String(data))
		require.Equal(t, len(data), s.Cursor)
	})

	t.Run("all methods", func(t *testing.T) {
		for _, m := range method.List {
			data := []byte(m.String() + " / HTTP/1.0\r\n")
			s := NewState()
			result, err := ParseRequestLine(data, s)
			require.NoError(t, err)
			require.Equal(t, parser.OK, result)
			require.Equal(t, m, s.Method)
			require.Equal(t, proto.HTTP10, s.Version)
		}
	})

	t.Run("tabs and repeated spaces", func(t *testing.T) {
		data := []byte("POST\t \t/upload \t HTTP/1.1\r\n")
		s := NewState()
		result, err := ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.OK, result)
		require.Equal(t, method.POST, s.Method)
		require.Equal(t, "/upload", s.URL.Path.String(data))
	})

	t.Run("case-insensitive protocol name", func(t *testing.T) {
		data := []byte("HEAD / hTtP/1.1\r\n")
		result, err := ParseRequestLine(data, NewState())
		require.NoError(t, err)
		require.Equal(t, parser.OK, result)
	})

	t.Run("pipelined data stays untouched", func(t *testing.T) {
		data := []byte("GET / HTTP/1.1\r\nHost: x\r\n")
		s := NewState()
		result, err := ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.OK, result)
		require.Equal(t, "Host: x\r\n", string(data[s.Cursor:]))
	})

	t.Run("pending", func(t *testing.T) {
		data := []byte("DELETE /resource HT")
		s := NewState()
		result, err := ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.Again, result)
		require.Equal(t, len(data), s.Cursor)

		data = append(data, "TP/1.1\r"...)
		result, err = ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.Again, result)

		data = append(data, '\n')
		result, err = ParseRequestLine(data, s)
		require.NoError(t, err)
		require.Equal(t, parser.OK, result)
		require.Equal(t, method.DELETE, s.Method)
		require.Equal(t, "/resource", s.URL.Path.String(data))
	})

	t.Run("empty data", func(t *testing.T) {
		s := NewState()
		result, err := ParseRequestLine(nil, s)
		require.NoError(t, err)
		require.Equal(t, parser.Again, result)
		require.Zero(t, s.Cursor)
	})
}

func TestParseRequestLine_Versions(t *testing.T) {
	accepted := map[string]proto.Version{
		"HTTP/1.1":  proto.HTTP11,
		"HTTP/1.0":  proto.HTTP10,
		"HTTP/0.9":  proto.HTTP09,
		"HTTP/0.0":  {Major: 0, Minor: 0},
		"HTTP/01.1": proto.HTTP11,
		"HTTP/1.01": proto.HTTP11,
		"HTTP/1.00": proto.HTTP10,
	}

	for version, wanted := range accepted {
		data := []byte("GET / " + version + "\r\n")
		s := NewState()
		result, err := ParseRequestLine(data, s)
		require.NoError(t, err, version)
		require.Equal(t, parser.OK, result, version)
		require.Equal(t, wanted, s.Version, version)
	}

	rejected := []string{
		"HTTP/2.0", "HTTP/9.1", "HTTP/11.1", "HTTP/10.0", "HTTP/1.10", "HTTP/1.11", "HTTP/0.91",
		"HTTP/1.2", "HTTP/1.5", "HTTP/1.9", "HTTP/0.2", "HTTP/0.8", "HTTP/01.9",
		"HTTP/1", "HTTP/1.", "HTTP/.1", "HTTP/x.1", "HTTP/1.x", "HTTP1.1", "HTTPS/1.1", "FTP/1.1",
	}

	for _, version := range rejected {
		data := []byte("GET / " + version + "\r\n")
		result, err := ParseRequestLine(data, NewState())
		require.Error(t, err, version)
		require.Equal(t, parser.InvalidRequest, result, version)
	}
}

func TestParseRequestLine_Invalid(t *testing.T) {
	for _, tc := range []struct {
		Name    string
		Request string
		Err     error
	}{
		{"unknown method", "PATCH /x HTTP/1.1\r\n", status.ErrMethodNotImplemented},
		{"lowercase method", "get / HTTP/1.1\r\n", status.ErrMethodNotImplemented},
		{"method with digits", "GET1 / HTTP/1.1\r\n", status.ErrBadRequest},
		{"leading space", " GET / HTTP/1.1\r\n", status.ErrBadRequest},
		{"leading CRLF", "\r\nGET / HTTP/1.1\r\n", status.ErrBadRequest},
		{"CR in method", "GE\rT / HTTP/1.1\r\n", status.ErrBadRequest},
		{"no URL", "GET \r\n", status.ErrBadRequest},
		{"LF in URL", "GET /a\nb HTTP/1.1\r\n", status.ErrBadRequest},
		{"relative URL", "GET index.html HTTP/1.1\r\n", status.ErrBadURL},
		{"absolute URI", "GET http://example.com/ HTTP/1.1\r\n", status.ErrBadURL},
		{"no version", "GET / \r\n", status.ErrUnsupportedProtocol},
		{"bare LF", "GET / HTTP/1.1\n", status.ErrBadRequest},
		{"CR not followed by LF", "GET / HTTP/1.1\r\r", status.ErrBadLineEnding},
		{"trailing space", "GET / HTTP/1.1 \r\n", status.ErrBadRequest},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			s := NewState()
			result, err := ParseRequestLine([]byte(tc.Request), s)
			require.Equal(t, parser.InvalidRequest, result)
			require.ErrorIs(t, err, tc.Err)
			require.LessOrEqual(t, s.Cursor, len(tc.Request))
		})
	}
}

func TestParseRequestLine_EarlyReject(t *testing.T) {
	// the URL is validated as soon as its token ends, without waiting for the line end
	data := []byte("GET foo ")
	result, err := ParseRequestLine(data, NewState())
	require.Equal(t, parser.InvalidRequest, result)
	require.ErrorIs(t, err, status.ErrBadURL)
}
