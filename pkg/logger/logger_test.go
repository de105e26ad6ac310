package logger

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("honours the requested level", func() {
			l, err := New("debug", "json")
			So(err, ShouldBeNil)
			So(l.Core().Enabled(zapcore.DebugLevel), ShouldBeTrue)
		})

		Convey("falls back to info on an unknown level", func() {
			l, err := New("loud", "console")
			So(err, ShouldBeNil)
			So(l.Core().Enabled(zapcore.DebugLevel), ShouldBeFalse)
			So(l.Core().Enabled(zapcore.InfoLevel), ShouldBeTrue)
		})
	})
}
