package main

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

func TestFailedChecker(t *testing.T) {
	cause := stderrors.New("dial tcp 127.0.0.1:6379: connection refused")
	c := failedChecker("redis", cause)

	assert.Equal(t, "redis", c.Name())
	err := c.Check(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeServiceUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "redis unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestInfrastructure_CloseRunsInReverse(t *testing.T) {
	var order []string
	infra := &infrastructure{logger: logging.NewNopLogger()}
	infra.closers = append(infra.closers,
		func() error { order = append(order, "redis"); return nil },
		func() error { order = append(order, "neo4j"); return stderrors.New("already closed") },
		func() error { order = append(order, "kafka"); return nil },
	)

	infra.Close()
	assert.Equal(t, []string{"kafka", "neo4j", "redis"}, order)
}

//Personal.AI order the ending
