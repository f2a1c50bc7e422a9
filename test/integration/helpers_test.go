//go:build integration

// Package integration exercises the Redis compound cache and the Neo4j herb
// graph against real servers started with testcontainers.  Run with
//
//	go test -tags integration ./test/integration/...
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	redisImage    = "redis:7-alpine"
	neo4jImage    = "neo4j:5-community"
	neo4jPassword = "ayurchem-test"
)

// startContainer launches req and returns host:port for the first exposed port.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) string {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func startRedis(t *testing.T) string {
	return startContainer(t, testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	})
}

// startNeo4j returns a bolt:// URI.
func startNeo4j(t *testing.T) string {
	addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        neo4jImage,
		ExposedPorts: []string{"7687/tcp"},
		Env:          map[string]string{"NEO4J_AUTH": "neo4j/" + neo4jPassword},
		WaitingFor:   wait.ForLog("Started.").WithStartupTimeout(2 * time.Minute),
	})
	return "bolt://" + addr
}

//Personal.AI order the ending
