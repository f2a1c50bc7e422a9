package repositories

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/mock"

	driver "github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/database/neo4j"
)

// MockExecutor runs every unit of work against its transaction mock.
type MockExecutor struct {
	mock.Mock
	tx *MockTransaction
}

func newMockExecutor() *MockExecutor {
	return &MockExecutor{tx: new(MockTransaction)}
}

func (m *MockExecutor) ExecuteRead(_ context.Context, work driver.TransactionWork) (any, error) {
	return work(m.tx)
}

func (m *MockExecutor) ExecuteWrite(_ context.Context, work driver.TransactionWork) (any, error) {
	return work(m.tx)
}

func (m *MockExecutor) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockExecutor) Close() error {
	return m.Called().Error(0)
}

type MockTransaction struct {
	mock.Mock
}

func (m *MockTransaction) Run(ctx context.Context, cypher string, params map[string]any) (driver.Result, error) {
	args := m.Called(ctx, cypher, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(driver.Result), args.Error(1)
}

// MockResult replays a fixed slice of records.
type MockResult struct {
	Records []*neo4j.Record
	pos     int
	Error   error
}

func (m *MockResult) Next(context.Context) bool {
	if m.pos < len(m.Records) {
		m.pos++
		return true
	}
	return false
}

func (m *MockResult) Record() *neo4j.Record { return m.Records[m.pos-1] }
func (m *MockResult) Err() error            { return m.Error }
func (m *MockResult) Consume(context.Context) (neo4j.ResultSummary, error) {
	return nil, nil
}

func NewRecord(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func herbNode(name string) neo4j.Node {
	return neo4j.Node{ElementId: "h:" + name, Labels: []string{"Herb"}, Props: map[string]any{"name": name}}
}

func propNode(label, name string) neo4j.Node {
	return neo4j.Node{ElementId: label + ":" + name, Labels: []string{label}, Props: map[string]any{"name": name}}
}

//Personal.AI order the ending
