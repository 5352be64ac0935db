package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseConfig(t *testing.T) {
	Convey("Without arguments no directory is served", t, func() {
		cfg, err := parseConfig(nil, io.Discard)
		So(err, ShouldBeNil)
		So(cfg.Directory, ShouldEqual, "")
		So(cfg.LogLevel, ShouldEqual, zerolog.InfoLevel)
	})

	Convey("--directory and --log-level are read", t, func() {
		cfg, err := parseConfig([]string{"--directory", "/tmp/data/", "--log-level", "debug"}, io.Discard)
		So(err, ShouldBeNil)
		So(cfg.Directory, ShouldEqual, "/tmp/data/")
		So(cfg.LogLevel, ShouldEqual, zerolog.DebugLevel)
	})

	Convey("An unknown log level is rejected", t, func() {
		_, err := parseConfig([]string{"--log-level", "loud"}, io.Discard)
		So(err, ShouldNotBeNil)
	})

	Convey("-h reports flag.ErrHelp", t, func() {
		_, err := parseConfig([]string{"-h"}, io.Discard)
		So(errors.Is(err, flag.ErrHelp), ShouldBeTrue)
	})
}
