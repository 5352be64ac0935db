package main

import (
	"bytes"
	"fmt"
	"strings"
)

// 每个连接只读一次，超过缓冲区大小的请求会被截断
const readBufferSize = 1024

var headerTerminator = []byte(CRLF + CRLF)

// Request 表示一个简单的 HTTP 请求（不依赖 net/http）
type Request struct {
	Method  string
	Path    string
	Version string
	Headers map[string]string // 同名头部以最后一次出现为准
	Body    []byte            // 没有 body 时为 nil
}

// Header 返回请求头的值，名字大小写按收到的原样匹配
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// ParseRequest 解析一次 read 得到的原始字节
//
// 请求行和头部按文本解码（非法 UTF-8 替换成 U+FFFD），
// body 是空行之后的全部字节，原样保留。
func ParseRequest(raw []byte) (*Request, error) {
	head := raw
	var body []byte
	if i := bytes.Index(raw, headerTerminator); i >= 0 {
		head = raw[:i]
		if rest := raw[i+len(headerTerminator):]; len(rest) > 0 {
			body = bytes.Clone(rest)
		}
	}

	text := strings.ToValidUTF8(string(head), "\uFFFD")
	lines := strings.Split(text, CRLF)

	// 请求行：method path version
	parts := strings.Fields(lines[0])
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: request line %q", ErrMalformedRequest, lines[0])
	}
	if !strings.HasPrefix(parts[1], "/") {
		return nil, fmt.Errorf("%w: path %q", ErrMalformedRequest, parts[1])
	}

	headers := make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		if line == "" {
			// 没有找到空行时（请求被截断），末尾可能留下空行
			continue
		}
		// 只按第一个 ':' 切分，value 里可以带冒号（Host: localhost:4221）
		key, value, ok := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: header line %q", ErrMalformedRequest, line)
		}
		headers[key] = strings.TrimSpace(value)
	}

	return &Request{
		Method:  parts[0],
		Path:    parts[1],
		Version: parts[2],
		Headers: headers,
		Body:    body,
	}, nil
}
