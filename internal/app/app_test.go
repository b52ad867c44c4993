package app

import (
	"context"
	"testing"
	"time"

	"github.com/gfdmit/pastebin/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRepository(t *testing.T) {
	Convey("Given the memory storage driver", t, func() {
		conf := config.Config{Storage: config.Storage{Driver: config.DriverMemory}}

		Convey("When the repository is created", func() {
			repo, err := newRepository(context.Background(), conf)

			Convey("Then no database is needed", func() {
				So(err, ShouldBeNil)
				So(repo, ShouldNotBeNil)
				So(repo.Close(), ShouldBeNil)
			})
		})
	})

	Convey("Given the postgres driver pointed at a closed port", t, func() {
		conf := config.Config{
			Storage: config.Storage{Driver: config.DriverPostgres},
			Postgres: config.Postgres{
				URL:     "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1",
				Timeout: 2 * time.Second,
			},
		}

		Convey("When Run is called", func() {
			err := Run(conf)

			Convey("Then it fails before listening", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "repository")
			})
		})
	})
}
