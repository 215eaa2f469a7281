package httpclient_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kwehdev/discord-game-bot/internal/httpclient"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := httpclient.New(httpclient.Config{})

	assert.Equal(t, httpclient.DefaultTimeout, c.Timeout)
	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Positive(t, tr.ResponseHeaderTimeout)
	assert.Positive(t, tr.TLSHandshakeTimeout)
}

func TestNew_Overrides(t *testing.T) {
	t.Parallel()

	c := httpclient.New(httpclient.Config{
		Timeout:               3 * time.Second,
		ResponseHeaderTimeout: time.Second,
		MaxIdleConnsPerHost:   2,
	})

	assert.Equal(t, 3*time.Second, c.Timeout)
	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, time.Second, tr.ResponseHeaderTimeout)
	assert.Equal(t, 2, tr.MaxIdleConnsPerHost)
}
