package minter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isle-stat/ssobridge/pkg/minter"
)

func TestEncodeClaim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		plain string
		want  string
	}{
		// The encoded forms are pinned: the receiving application decodes
		// with a URL-safe base64 decoder that expects padding.
		{name: "eppn", plain: "jdoe@example.edu", want: "amRvZUBleGFtcGxlLmVkdQ=="},
		{name: "display name with space", plain: "Jane Doe", want: "SmFuZSBEb2U="},
		{name: "affiliation", plain: "staff", want: "c3RhZmY="},
		{name: "continuation query", plain: "next=/lesson/3", want: "bmV4dD0vbGVzc29uLzM="},
		{name: "empty string", plain: "", want: ""},
		{name: "multibyte name", plain: "Ünïcode Nàme", want: "w5xuw69jb2RlIE7DoG1l"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := minter.EncodeClaim(tt.plain)
			assert.Equal(t, tt.want, got)

			back, err := minter.DecodeClaim(got)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, back)
		})
	}
}

func TestDecodeClaimInvalid(t *testing.T) {
	t.Parallel()
	_, err := minter.DecodeClaim("not base64 at all!")
	require.Error(t, err)
}
