package main

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// CRLF 回车换行，HTTP 报文的行分隔符
const CRLF = "\r\n"

const httpVersion = "HTTP/1.1"

// Status 响应状态码
type Status int

const (
	StatusOK                  Status = 200
	StatusCreated             Status = 201
	StatusBadRequest          Status = 400
	StatusNotFound            Status = 404
	StatusInternalServerError Status = 500
)

var statusText = map[Status]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

func (s Status) String() string {
	return strconv.Itoa(int(s)) + " " + statusText[s]
}

// Response 一次请求的响应，每个请求重新构造，不复用
//
// ContentType 为空时只输出状态行和空行（例如 GET /、201、404），
// 否则输出 Content-Type 和 Content-Length，Encoding 非空时再加
// Content-Encoding。body 始终是原始字节，不做压缩。
type Response struct {
	Status      Status
	ContentType string
	Encoding    string
	Body        []byte
}

// Bytes 把响应拼成要写回 socket 的字节
func (r *Response) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(httpVersion + " " + r.Status.String() + CRLF)
	if r.ContentType != "" {
		buf.WriteString("Content-Type: " + r.ContentType + CRLF)
		buf.WriteString("Content-Length: " + strconv.Itoa(len(r.Body)) + CRLF)
		if r.Encoding != "" {
			buf.WriteString("Content-Encoding: " + r.Encoding + CRLF)
		}
	}
	buf.WriteString(CRLF)
	if r.ContentType != "" {
		buf.Write(r.Body)
	}
	return buf.Bytes()
}

// WriteTo 实现 io.WriterTo
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// textResponse 200 text/plain
func textResponse(body []byte) *Response {
	return &Response{Status: StatusOK, ContentType: "text/plain", Body: body}
}

// negotiateEncoding 只要 Accept-Encoding 里出现 "gzip" 子串就声明 gzip，
// 不按逗号拆分 token
func negotiateEncoding(req *Request) string {
	if enc, ok := req.Header("Accept-Encoding"); ok && strings.Contains(enc, "gzip") {
		return "gzip"
	}
	return ""
}
