package config

import (
	"net/url"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSNEscapesPassword(t *testing.T) {
	c := &Config{
		DBDriver:   "postgres",
		DBUser:     "admin",
		DBPassword: `p@ss'w\rd:/?#`,
		DBHost:     "db.example.org",
		DBPort:     "6543",
		DBName:     "postgres",
		DBSSLMode:  "require",
	}
	u, err := url.Parse(c.DSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.example.org:6543", u.Host)
	assert.Equal(t, "/postgres", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	pass, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, `p@ss'w\rd:/?#`, pass)
	assert.Equal(t, "admin", u.User.Username())
}

func TestMySQLDSNRoundTrips(t *testing.T) {
	c := &Config{
		DBDriver:   "mysql",
		DBUser:     "root",
		DBPassword: `se@cr'et`,
		DBHost:     "127.0.0.1",
		DBPort:     "3306",
		DBName:     "console",
	}
	mc, err := mysql.ParseDSN(c.DSN())
	require.NoError(t, err)
	assert.Equal(t, "root", mc.User)
	assert.Equal(t, `se@cr'et`, mc.Passwd)
	assert.Equal(t, "127.0.0.1:3306", mc.Addr)
	assert.Equal(t, "console", mc.DBName)
	assert.True(t, mc.ParseTime)
}

func TestDatabaseURLWins(t *testing.T) {
	c := &Config{DBDriver: "postgres", DatabaseURL: "postgres://u:p@h:5432/d", DBHost: "ignored"}
	assert.Equal(t, "postgres://u:p@h:5432/d", c.DSN())
}

func TestPostgresDSNPlain(t *testing.T) {
	c := &Config{DBDriver: "postgres", DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n", DBSSLMode: "require"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=require", c.DSN())
}
