package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	hc := &http.Client{}
	logger := noopLogger{}
	c, err := NewClient("https://api.example.com",
		WithHTTPClient(hc),
		WithTimeout(7*time.Second),
		WithLogger(logger),
		WithRetryMax(0),
		WithRetryWait(time.Second, 2*time.Second),
		WithUserAgent("cli/2"),
	)
	require.NoError(t, err)
	assert.Same(t, hc, c.httpClient)
	assert.Equal(t, 7*time.Second, hc.Timeout)
	assert.Equal(t, 0, c.retryMax)
	assert.Equal(t, time.Second, c.retryWaitMin)
	assert.Equal(t, 2*time.Second, c.retryWaitMax)
	assert.Equal(t, "cli/2", c.userAgent)
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	c, err := NewClient("http://localhost",
		WithHTTPClient(nil),
		WithTimeout(-1),
		WithLogger(nil),
		WithRetryMax(-1),
		WithRetryWait(2*time.Second, time.Second),
		WithUserAgent(""),
	)
	require.NoError(t, err)
	assert.NotNil(t, c.httpClient)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
	assert.Equal(t, 3, c.retryMax)
	assert.Equal(t, 2*time.Second, c.retryWaitMin)
	assert.Equal(t, 5*time.Second, c.retryWaitMax)
	assert.Contains(t, c.userAgent, "ayurchem-go-sdk/")
}

//Personal.AI order the ending
