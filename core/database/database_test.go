package database

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "app",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorIs(t, err, ErrUnsupportedDriver)
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		defer Close(db)

		var one int
		require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
		assert.Equal(t, 1, one)
	})
}

func TestOpen_Mock(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()

	db, err := Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "mysql", db.Dialector.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(assert.AnError)

	db, err := Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), time.Second)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, db)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(Config{Driver: "mysql", User: "u", Password: "p@ss", Host: "db", Port: 3306, Name: "app"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())
	assert.Contains(t, d.(*mysql.Dialector).DSN, "u:p%40ss@tcp(db:3306)/app?")

	d, err = Dialector(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestSession(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	app := fiber.New()
	app.Use(Session(db))
	app.Get("/", func(c *fiber.Ctx) error {
		session, ok := FromLocals(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		var n int
		if err := session.Raw("SELECT 2").Scan(&n).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"n": n})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"n":2}`, string(body))
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Driver: "sqlite"}.Enabled())
}
