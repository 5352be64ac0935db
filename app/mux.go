package main

import "strings"

// HandlerFunc 路由处理函数类型
// capture 是前缀路由匹配后剩下的 path，精确路由时为空字符串
type HandlerFunc func(req *Request, capture string) (*Response, error)

// route 一条路由规则：method 精确匹配，path 精确或前缀匹配
type route struct {
	method  string
	pattern string
	prefix  bool
	handler HandlerFunc
}

func (r *route) match(method, path string) (string, bool) {
	if r.method != method {
		return "", false
	}
	if r.prefix {
		return strings.CutPrefix(path, r.pattern)
	}
	return "", path == r.pattern
}

// Mux 非 net/http 版本的极简路由器
// 按注册顺序逐条匹配，第一条命中的规则生效
type Mux struct {
	routes []route
}

// NewMux 创建一个新的路由器
func NewMux() *Mux {
	return &Mux{}
}

// Handle 注册精确路由，例如 ("GET", "/user-agent")
func (m *Mux) Handle(method, path string, handler HandlerFunc) {
	m.routes = append(m.routes, route{method: method, pattern: path, handler: handler})
}

// HandlePrefix 注册前缀路由，例如 ("GET", "/echo/")，
// path 去掉前缀后的部分作为 capture 传给 handler
func (m *Mux) HandlePrefix(method, prefix string, handler HandlerFunc) {
	m.routes = append(m.routes, route{method: method, pattern: prefix, prefix: true, handler: handler})
}

// Serve 根据 method + path 分发到对应的 Handler
// 如果没有匹配的路由，则返回 404
func (m *Mux) Serve(req *Request) (*Response, error) {
	for i := range m.routes {
		r := &m.routes[i]
		if capture, ok := r.match(req.Method, req.Path); ok {
			return r.handler(req, capture)
		}
	}
	return &Response{Status: StatusNotFound}, nil
}
