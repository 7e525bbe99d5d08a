package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTable_Match(t *testing.T) {
	table := DefaultRouteTable()

	tests := []struct {
		name     string
		path     string
		wantName ServiceName
		wantOK   bool
	}{
		{name: "user root", path: "/user", wantName: ServiceUser, wantOK: true},
		{name: "user subpath", path: "/user/42", wantName: ServiceUser, wantOK: true},
		{name: "user purchased", path: "/user/purchased/7", wantName: ServiceUser, wantOK: true},
		{name: "product", path: "/product/3", wantName: ServiceProduct, wantOK: true},
		{name: "order", path: "/order", wantName: ServiceOrder, wantOK: true},
		{name: "unknown", path: "/unknown", wantOK: false},
		{name: "root", path: "/", wantOK: false},
		{name: "empty", path: "", wantOK: false},
		// Prefix matching, not segment matching: /users classifies as UserService.
		{name: "prefix not segment", path: "/users", wantName: ServiceUser, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := table.Match(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, name)
			}
		})
	}
}

func TestRouteTable_Match_first_match_wins(t *testing.T) {
	table := RouteTable{
		{Prefix: "/user/purchased", Service: ServiceOrder},
		{Prefix: "/user", Service: ServiceUser},
	}
	name, ok := table.Match("/user/purchased/1")
	require.True(t, ok)
	assert.Equal(t, ServiceOrder, name)
}

func TestValidateRouteTable(t *testing.T) {
	tests := []struct {
		name    string
		table   RouteTable
		wantErr string
	}{
		{name: "default table", table: DefaultRouteTable()},
		{name: "empty table", table: RouteTable{}},
		{
			name:    "empty prefix",
			table:   RouteTable{{Prefix: "", Service: ServiceUser}},
			wantErr: "route[0]: prefix must be non-empty",
		},
		{
			name:    "no leading slash",
			table:   RouteTable{{Prefix: "user", Service: ServiceUser}},
			wantErr: "route[0]: prefix must start with /",
		},
		{
			name:    "blank service",
			table:   RouteTable{{Prefix: "/user", Service: " "}},
			wantErr: "route[0]: service must be non-empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRouteTable(tt.table)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
