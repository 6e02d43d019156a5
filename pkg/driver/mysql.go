package driver

import (
	"context"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

func init() {
	Register(mysqlDriver{})
}

// mysqlDriver opens MySQL sessions via go-sql-driver.
type mysqlDriver struct{}

func (mysqlDriver) Name() string { return "mysql" }

func (mysqlDriver) Open(ctx context.Context, p Params) (Conn, error) {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	cfg.User = p.Username
	cfg.Passwd = p.Password
	cfg.DBName = p.Database
	cfg.ParseTime = true
	return openSQL(ctx, "mysql", cfg.FormatDSN())
}
