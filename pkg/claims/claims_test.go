package claims_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isle-stat/ssobridge/pkg/claims"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    claims.ClaimSet
		wantErr string
	}{
		{
			name:   "all claims present",
			target: "/",
			headers: map[string]string{
				"Eppn":        "jdoe@example.edu",
				"Displayname": "Jane Doe",
				"Affiliation": "staff",
			},
			want: claims.ClaimSet{
				EPPN:        "jdoe@example.edu",
				DisplayName: "Jane Doe",
				Affiliation: "staff",
			},
		},
		{
			name:   "continuation query string captured",
			target: "/?next=/lesson/3",
			headers: map[string]string{
				"Eppn":        "jdoe@example.edu",
				"Displayname": "Jane Doe",
				"Affiliation": "staff",
			},
			want: claims.ClaimSet{
				EPPN:        "jdoe@example.edu",
				DisplayName: "Jane Doe",
				Affiliation: "staff",
				URL:         "next=/lesson/3",
			},
		},
		{
			name:   "header lookup is case-insensitive",
			target: "/",
			headers: map[string]string{
				"eppn":        "jdoe@example.edu",
				"displayname": "Jane Doe",
				"affiliation": "staff",
			},
			want: claims.ClaimSet{
				EPPN:        "jdoe@example.edu",
				DisplayName: "Jane Doe",
				Affiliation: "staff",
			},
		},
		{
			name:   "missing eppn",
			target: "/",
			headers: map[string]string{
				"Displayname": "Jane Doe",
				"Affiliation": "staff",
			},
			wantErr: "eppn",
		},
		{
			name:   "missing display name",
			target: "/",
			headers: map[string]string{
				"Eppn":        "jdoe@example.edu",
				"Affiliation": "staff",
			},
			wantErr: "displayName",
		},
		{
			name:   "missing affiliation",
			target: "/",
			headers: map[string]string{
				"Eppn":        "jdoe@example.edu",
				"Displayname": "Jane Doe",
			},
			wantErr: "affiliation",
		},
		{
			name:    "no claims at all",
			target:  "/",
			wantErr: "eppn",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", tt.target, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			got, err := claims.FromRequest(r)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, claims.ErrMissingClaim)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, claims.ClaimSet{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClaimSetValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid without optional url", func(t *testing.T) {
		t.Parallel()
		cs := claims.ClaimSet{EPPN: "a@b.edu", DisplayName: "A B", Affiliation: "member"}
		require.NoError(t, cs.Validate())
	})

	t.Run("zero value invalid", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, claims.ClaimSet{}.Validate(), claims.ErrMissingClaim)
	})
}
