// Helpers for running a real database server with testcontainers.
// Used by the integration tests and by the standalone cmd/testcontainers executable.
//

package testhelpers

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBName     = "starwars"
	testDBUser     = "starwars"
	testDBPassword = "starwars"
)

// DatabaseContainer is a running database server and the DATABASE_URL that reaches it
type DatabaseContainer struct {
	Container testcontainers.Container
	URL       string
}

// Terminate stops the container
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	if dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate database container: %v", err)
	}
}

// StartDatabase starts a postgres or mariadb server. DB_IMAGE overrides the image.
func StartDatabase(t *testing.T, dbType string) (*DatabaseContainer, error) {
	ctx := context.Background()

	var (
		image  string
		port   string
		env    map[string]string
		scheme string
		ready  *wait.LogStrategy
	)
	switch dbType {
	case "postgres":
		image = "postgres:17-alpine"
		port = "5432"
		scheme = "postgres"
		env = map[string]string{
			"POSTGRES_DB":       testDBName,
			"POSTGRES_USER":     testDBUser,
			"POSTGRES_PASSWORD": testDBPassword,
		}
		// The init process restarts the server once
		ready = wait.ForLog("database system is ready to accept connections").WithOccurrence(2)
	case "mysql", "mariadb":
		image = "mariadb:11"
		port = "3306"
		scheme = "mysql"
		env = map[string]string{
			"MARIADB_DATABASE":      testDBName,
			"MARIADB_USER":          testDBUser,
			"MARIADB_PASSWORD":      testDBPassword,
			"MARIADB_ROOT_PASSWORD": testDBPassword,
		}
		ready = wait.ForLog("ready for connections").WithOccurrence(2)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
	if override := os.Getenv("DB_IMAGE"); override != "" {
		image = override
	}

	tcpPort, err := nat.NewPort("tcp", port)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          env,
			WaitingFor:   ready.WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", dbType, err)
	}
	dc := &DatabaseContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	u := url.URL{
		Scheme: scheme,
		User:   url.UserPassword(testDBUser, testDBPassword),
		Host:   fmt.Sprintf("%s:%s", host, mapped.Port()),
		Path:   "/" + testDBName,
	}
	if dbType == "postgres" {
		u.RawQuery = "sslmode=disable"
	}
	dc.URL = u.String()

	logMessage(t, "DATABASE_URL=%s", dc.URL)
	return dc, nil
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
