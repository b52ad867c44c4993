package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gfdmit/pastebin/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServer(t *testing.T) {
	Convey("Given a server bound to an ephemeral port", t, func() {
		conf := config.HTTPServer{
			BindAddress:     "127.0.0.1",
			BindPort:        "0",
			ShutdownTimeout: time.Second,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
		}
		srv := New(conf, http.NotFoundHandler())

		Convey("Then the address joins host and port", func() {
			So(srv.Addr(), ShouldEqual, "127.0.0.1:0")
		})

		Convey("When its context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- srv.Run(ctx) }()

			time.Sleep(50 * time.Millisecond)
			cancel()

			Convey("Then Run shuts down cleanly", func() {
				select {
				case err := <-done:
					So(err, ShouldBeNil)
				case <-time.After(5 * time.Second):
					So("Run did not return", ShouldBeEmpty)
				}
			})
		})
	})

	Convey("Given a server whose address cannot be bound", t, func() {
		conf := config.HTTPServer{
			BindAddress:     "127.0.0.1",
			BindPort:        "not-a-port",
			ShutdownTimeout: time.Second,
		}
		srv := New(conf, http.NotFoundHandler())

		Convey("When it runs", func() {
			err := srv.Run(context.Background())

			Convey("Then the listen error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
