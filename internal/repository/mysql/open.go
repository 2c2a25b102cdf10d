package mysql

import (
	"fmt"
	"net"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pratikw008/blog-rest-api/internal/repository/mysql/model"
)

// Options describes how to reach the database.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	MaxRetry      int
	RetryInterval time.Duration
}

// DSN builds the driver connection string. ClientFoundRows makes UPDATE report matched rows,
// so an update that changes nothing is not mistaken for a missing row.
func (o Options) DSN() string {
	cfg := drv.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, o.Port)
	cfg.DBName = o.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

// Open connects to MySQL, retrying until the server answers a ping.
func Open(o Options) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	retries := max(o.MaxRetry, 1)
	for i := 0; i < retries; i++ {
		db, err = gorm.Open(mysql.Open(o.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, retries, err)

		if i < retries-1 {
			time.Sleep(o.RetryInterval)
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", retries, err)
}

// AutoMigrate creates or updates the posts and comments tables, including the unique title
// index and the cascading foreign key from comments to posts.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Post{}, &model.Comment{})
}
