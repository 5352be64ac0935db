package main

import "fmt"

// registerRoutes 注册所有路由到 Mux，注册顺序即优先级
func registerRoutes(m *Mux, files FileStore) {
	m.Handle("GET", "/", rootHandler)
	m.HandlePrefix("GET", "/echo/", echoHandler)
	m.Handle("GET", "/user-agent", userAgentHandler)
	m.HandlePrefix("GET", "/files/", fileGetHandler(files))
	m.HandlePrefix("POST", "/files/", filePostHandler(files))
}

// 根路径 Handler：返回 200 OK，无头部无 body
func rootHandler(_ *Request, _ string) (*Response, error) {
	return &Response{Status: StatusOK}, nil
}

// /echo/<text> Handler
// Accept-Encoding 含 gzip 时只声明 Content-Encoding，body 不压缩
func echoHandler(req *Request, text string) (*Response, error) {
	resp := textResponse([]byte(text))
	resp.Encoding = negotiateEncoding(req)
	return resp, nil
}

// /user-agent Handler
func userAgentHandler(req *Request, _ string) (*Response, error) {
	ua, ok := req.Header("User-Agent")
	if !ok {
		return nil, fmt.Errorf("%w: User-Agent", ErrMissingHeader)
	}
	return textResponse([]byte(ua)), nil
}

// GET /files/<name> Handler
func fileGetHandler(files FileStore) HandlerFunc {
	return func(_ *Request, name string) (*Response, error) {
		data, err := files.Read(name)
		if err != nil {
			return nil, err
		}
		return &Response{
			Status:      StatusOK,
			ContentType: "application/octet-stream",
			Body:        data,
		}, nil
	}
}

// POST /files/<name> Handler
func filePostHandler(files FileStore) HandlerFunc {
	return func(req *Request, name string) (*Response, error) {
		if err := files.Write(name, req.Body); err != nil {
			return nil, err
		}
		return &Response{Status: StatusCreated}, nil
	}
}
