package main

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResponseBytes(t *testing.T) {
	Convey("A bare response is only the status line and a blank line", t, func() {
		So(string((&Response{Status: StatusOK}).Bytes()), ShouldEqual, "HTTP/1.1 200 OK\r\n\r\n")
		So(string((&Response{Status: StatusCreated}).Bytes()), ShouldEqual, "HTTP/1.1 201 Created\r\n\r\n")
		So(string((&Response{Status: StatusNotFound}).Bytes()), ShouldEqual, "HTTP/1.1 404 Not Found\r\n\r\n")
		So(string((&Response{Status: StatusBadRequest}).Bytes()), ShouldEqual, "HTTP/1.1 400 Bad Request\r\n\r\n")
		So(string((&Response{Status: StatusInternalServerError}).Bytes()), ShouldEqual, "HTTP/1.1 500 Internal Server Error\r\n\r\n")
	})

	Convey("A text response carries Content-Type and Content-Length", t, func() {
		resp := textResponse([]byte("hello"))
		So(string(resp.Bytes()), ShouldEqual,
			"HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello")
	})

	Convey("Content-Length counts bytes, not runes", t, func() {
		resp := textResponse([]byte("héllo"))
		So(string(resp.Bytes()), ShouldContainSubstring, "Content-Length: 6\r\n")
	})

	Convey("An announced encoding leaves the body untouched", t, func() {
		resp := textResponse([]byte("hello"))
		resp.Encoding = "gzip"
		So(string(resp.Bytes()), ShouldEqual,
			"HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\nContent-Encoding: gzip\r\n\r\nhello")
	})

	Convey("WriteTo writes the same bytes", t, func() {
		resp := &Response{Status: StatusOK, ContentType: "application/octet-stream", Body: []byte{0, 1, 2}}
		var buf bytes.Buffer
		n, err := resp.WriteTo(&buf)
		So(err, ShouldBeNil)
		So(n, ShouldEqual, int64(buf.Len()))
		So(buf.Bytes(), ShouldResemble, resp.Bytes())
	})
}

func TestNegotiateEncoding(t *testing.T) {
	Convey("gzip is announced on a plain substring match", t, func() {
		cases := map[string]string{
			"gzip":                   "gzip",
			"deflate, gzip":          "gzip",
			"invalid-encoding":       "",
			"x-gzip-ish":             "gzip",
			"encoding-1, encoding-2": "",
		}
		for header, want := range cases {
			req := &Request{Headers: map[string]string{"Accept-Encoding": header}}
			So(negotiateEncoding(req), ShouldEqual, want)
		}
	})

	Convey("No Accept-Encoding header means no encoding", t, func() {
		So(negotiateEncoding(&Request{Headers: map[string]string{}}), ShouldEqual, "")
	})
}
