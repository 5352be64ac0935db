package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	// 解析命令行参数，获取 --directory 传入的目录
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()
	if cfg.Directory != "" {
		logger.Info().Str("directory", cfg.Directory).Msg("文件目录")
	}

	// 启动 HTTP 服务器
	srv := NewServer(cfg, logger)
	if err := srv.ListenAndServe(listenAddress); err != nil {
		logger.Fatal().Err(err).Msg("服务器启动失败")
	}
}
