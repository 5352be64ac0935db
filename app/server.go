package main

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"
)

// Server 每个连接一个 goroutine：读一次、解析、路由、写一次、关闭
//
// 连接数没有上限，也没有读写超时，大量慢连接会占满 goroutine，
// 这是这个最小实现的已知限制。
type Server struct {
	mux    *Mux
	logger zerolog.Logger
}

// NewServer 按配置注册路由
func NewServer(cfg Config, logger zerolog.Logger) *Server {
	mux := NewMux()
	registerRoutes(mux, NewFileStore(cfg.Directory))
	return &Server{mux: mux, logger: logger}
}

// ListenAndServe 绑定地址后开始接受连接
func (s *Server) ListenAndServe(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("绑定端口失败: %w", err)
	}
	s.logger.Info().Str("address", listener.Addr().String()).Msg("开始监听")
	return s.Serve(listener)
}

// Serve 循环接受连接，listener 关闭后返回 nil
func (s *Server) Serve(listener net.Listener) error {
	defer listener.Close()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info().Msg("监听器已关闭，停止接受新连接")
				return nil
			}
			s.logger.Error().Err(fmt.Errorf("%w: accept: %v", ErrSocket, err)).Msg("接受连接时出错")
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	logger := s.logger.With().Str("remote", conn.RemoteAddr().String()).Logger()
	defer conn.Close()
	defer func() {
		// 单个连接出问题只丢弃这个连接
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("处理连接时发生 panic")
		}
	}()
	logger.Debug().Msg("accepted new connection")

	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Warn().Err(fmt.Errorf("%w: read: %v", ErrSocket, err)).Msg("读取请求失败")
		}
		return
	}
	if n == len(buf) {
		logger.Warn().Int("bytes", n).Msg("请求填满了读缓冲区，可能被截断")
	}

	resp := s.respond(&logger, buf[:n])
	if _, err := resp.WriteTo(conn); err != nil {
		logger.Warn().Err(fmt.Errorf("%w: write: %v", ErrSocket, err)).Msg("写响应失败")
	}
}

// respond 解析并路由一次请求，错误统一转换成响应
func (s *Server) respond(logger *zerolog.Logger, raw []byte) *Response {
	req, err := ParseRequest(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Error parsing request")
		return errorResponse(err)
	}

	resp, err := s.mux.Serve(req)
	if err != nil {
		resp = errorResponse(err)
		logger.Warn().Err(err).Str("method", req.Method).Str("path", req.Path).
			Int("status", int(resp.Status)).Msg("处理请求失败")
		return resp
	}
	logger.Info().Str("method", req.Method).Str("path", req.Path).
		Int("status", int(resp.Status)).Msg("请求已处理")
	return resp
}
