package logger

import (
	"context"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerLifecycle(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized", func() {
			err := Init()

			Convey("Then Get should return a usable logger", func() {
				So(err, ShouldBeNil)
				So(Get(), ShouldNotBeNil)
			})

			Convey("And logging at every level should not panic", func() {
				ctx := context.Background()
				l := Get()
				So(func() {
					l.Debug(ctx, "debug line", String("k", "v"))
					l.Info(ctx, "info line", Int("rows", 3))
					l.Warn(ctx, "warn line", Float64("pct", 99.5))
					l.Error(ctx, "error line", Error(nil), Any("payload", map[string]int{"a": 1}))
				}, ShouldNotPanic)
			})

			Convey("And a named logger should be independent", func() {
				named := Named("dataset")
				So(named, ShouldNotBeNil)
				So(func() { named.Info(context.Background(), "named line") }, ShouldNotPanic)
			})

			Convey("And Sync should be a no-op", func() {
				So(Sync(), ShouldBeNil)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level parsing", t, func() {
		So(Init(), ShouldBeNil)

		Convey("When setting known levels", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO  "} {
				So(SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("When setting an unknown level", func() {
			err := SetLevelString("verbose")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown log level")
		})

		Convey("When setting a level directly", func() {
			So(func() { SetLevel(slog.LevelWarn) }, ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(String("a", "b"), ShouldResemble, Field{Key: "a", Value: "b"})
		So(Int("n", 7).Key, ShouldEqual, "n")
		So(Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(Error(nil).Key, ShouldEqual, "error")
	})
}
