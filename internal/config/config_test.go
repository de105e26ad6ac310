package config

import (
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given no environment overrides", t, func() {
		cfg := LoadConfig()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Database.Driver, convey.ShouldEqual, "mysql")
			convey.So(cfg.Database.Port, convey.ShouldEqual, "3306")
			convey.So(cfg.Database.AutoMigrate, convey.ShouldBeTrue)
			convey.So(cfg.Server.Port, convey.ShouldEqual, "8080")
			convey.So(cfg.Server.ShutdownTimeout, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Server.DefaultPageSize, convey.ShouldEqual, 10)
			convey.So(cfg.Import.DataFile, convey.ShouldEqual, "hospitaldata.json")
			convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"http://localhost:3000", "http://localhost:5173"})
		})
	})

	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("DB_DRIVER", "memory")
		t.Setenv("DB_AUTO_MIGRATE", "false")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("COUNT_PAGE_SIZE", "25")
		t.Setenv("HOSPITAL_DATA_FILE", "/data/hospitals.json")
		t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

		cfg := LoadConfig()

		convey.Convey("Then the overrides should win", func() {
			convey.So(cfg.Database.Driver, convey.ShouldEqual, "memory")
			convey.So(cfg.Database.AutoMigrate, convey.ShouldBeFalse)
			convey.So(cfg.Server.ShutdownTimeout, convey.ShouldEqual, 3*time.Second)
			convey.So(cfg.Server.DefaultPageSize, convey.ShouldEqual, 25)
			convey.So(cfg.Import.DataFile, convey.ShouldEqual, "/data/hospitals.json")
			convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
		})
	})

	convey.Convey("Given malformed values", t, func() {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		t.Setenv("COUNT_PAGE_SIZE", "-4")
		t.Setenv("DB_AUTO_MIGRATE", "maybe")

		cfg := LoadConfig()

		convey.Convey("Then defaults should be used", func() {
			convey.So(cfg.Server.ShutdownTimeout, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Server.DefaultPageSize, convey.ShouldEqual, 10)
			convey.So(cfg.Database.AutoMigrate, convey.ShouldBeTrue)
		})
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	convey.Convey("DSN should include credentials, address and database", t, func() {
		d := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: "3307", Database: "hospitals"}
		convey.So(d.DSN(), convey.ShouldEqual, "u:p@tcp(db:3307)/hospitals?charset=utf8mb4&parseTime=True&loc=UTC")
	})
}
