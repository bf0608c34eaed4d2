package minter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isle-stat/ssobridge/pkg/minter"
)

const testTarget = "https://isle.stat.cmu.edu/#/shibboleth"

func TestRedirectURL(t *testing.T) {
	t.Parallel()

	cs := testClaims
	cs.URL = "next=/lesson/3"
	m, err := fixedMinter(time.Unix(1700000000, 0), []byte{0xde, 0xad, 0xbe, 0xef}).Mint(cs, "s3cr3t")
	require.NoError(t, err)

	got := minter.RedirectURL(testTarget, m)

	// The full URL is pinned so any change to parameter order or encoding
	// shows up as a diff, not just a failed count.
	assert.Equal(t, testTarget+
		"?token=6d9194a91d877846804290157c458892a8ce6fdcd4f352f9105b1c5811e73e81"+
		"&time=1700000000.000000"+
		"&salt=deadbeef"+
		"&eppn=amRvZUBleGFtcGxlLmVkdQ=="+
		"&name=SmFuZSBEb2U="+
		"&affil=c3RhZmY="+
		"&url=bmV4dD0vbGVzc29uLzM=", got)
}

func TestRedirectURLParameterOrder(t *testing.T) {
	t.Parallel()

	m, err := minter.New(minter.Config{}).Mint(testClaims, "s3cr3t")
	require.NoError(t, err)

	query, found := strings.CutPrefix(minter.RedirectURL(testTarget, m), testTarget+"?")
	require.True(t, found)

	params := strings.Split(query, "&")
	require.Len(t, params, 7)

	names := make([]string, len(params))
	for i, p := range params {
		name, value, ok := strings.Cut(p, "=")
		require.True(t, ok)
		names[i] = name
		if name != "url" { // url claim is empty here and encodes to ""
			assert.NotEmpty(t, value, "parameter %q", name)
		}
	}
	assert.Equal(t, []string{"token", "time", "salt", "eppn", "name", "affil", "url"}, names)
}
