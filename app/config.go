package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// 监听地址固定，不提供参数修改
const listenAddress = "127.0.0.1:4221"

// Config 启动时从命令行解析一次，之后按值传递，不再修改
type Config struct {
	Directory string
	LogLevel  zerolog.Level
}

// parseConfig 解析命令行参数
// 示例：./your_program.sh --directory /tmp/data/
func parseConfig(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("http-server", flag.ContinueOnError)
	fs.SetOutput(output)
	directory := fs.String("directory", "", "directory served by /files/<name>")
	level := fs.String("log-level", zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid --log-level %q: %w", *level, err)
	}
	return Config{Directory: *directory, LogLevel: lvl}, nil
}
