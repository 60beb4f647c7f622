package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var Files embed.FS

// GetFS returns the migrations filesystem for a database driver
func GetFS(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "sqlite":
		return fs.Sub(Files, driver)
	}
	return nil, fmt.Errorf("no migrations for driver: %s", driver)
}
