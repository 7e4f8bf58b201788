package httpx

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"name":"Ada"}`), &dst))
	assert.Equal(t, "Ada", dst.Name)

	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"Ada","extra":1}`), &dst))
	assert.Error(t, DecodeJSON(strings.NewReader(`{"name":"Ada"}{"name":"Bob"}`), &dst))
	assert.Error(t, DecodeJSON(strings.NewReader(`not json`), &dst))
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(20), limit)
	assert.Equal(t, int64(0), offset)

	limit, offset, err = ParseLimitOffset(url.Values{"limit": {"500"}, "offset": {"40"}}, 20, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), limit)
	assert.Equal(t, int64(40), offset)

	_, _, err = ParseLimitOffset(url.Values{"limit": {"0"}}, 20, 100)
	assert.EqualError(t, err, "invalid limit")

	_, _, err = ParseLimitOffset(url.Values{"offset": {"-1"}}, 20, 100)
	assert.EqualError(t, err, "invalid offset")
}

func TestQueryList(t *testing.T) {
	values := url.Values{"industry": {"Car-Hauling, construction", "car-hauling", " ", "logistics"}}
	assert.Equal(t, []string{"car-hauling", "construction", "logistics"}, QueryList(values, "industry"))
	assert.Nil(t, QueryList(values, "function"))
}
