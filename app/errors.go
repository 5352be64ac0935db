package main

import "errors"

// 处理一个连接时可能出现的错误种类，用 errors.Is 判断
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrMissingHeader    = errors.New("missing required header")
	ErrFileNotFound     = errors.New("file not found")
	ErrFileIO           = errors.New("file i/o error")
	ErrSocket           = errors.New("socket error")
)

// statusForError 把错误映射成响应状态码
func statusForError(err error) Status {
	switch {
	case errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrMissingHeader):
		return StatusBadRequest
	case errors.Is(err, ErrFileNotFound):
		return StatusNotFound
	default:
		return StatusInternalServerError
	}
}

// errorResponse 错误对应的响应：只有状态行，没有 body
func errorResponse(err error) *Response {
	return &Response{Status: statusForError(err)}
}
