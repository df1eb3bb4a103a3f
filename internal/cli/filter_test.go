package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shelfsync/internal/models"
)

func TestParseFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    models.FilterSpec
		wantErr bool
	}{
		{
			name: "single brand",
			args: []string{"brand=sparkle-cola"},
			want: models.FilterSpec{Brand: "sparkle-cola"},
		},
		{
			name: "several keys",
			args: []string{"chain=MegaMart", "state=TX", "min_likes=5"},
			want: models.FilterSpec{Chain: "MegaMart", State: "TX", MinLikes: 5},
		},
		{
			name: "date range",
			args: []string{"from=2025-05-01", "to=2025-05-31"},
			want: models.FilterSpec{Dates: &models.DateRange{
				Start: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			}},
		},
		{
			name:    "unknown key",
			args:    []string{"flavor=grape"},
			wantErr: true,
		},
		{
			name:    "missing value",
			args:    []string{"brand="},
			wantErr: true,
		},
		{
			name:    "not key=value",
			args:    []string{"brand"},
			wantErr: true,
		},
		{
			name:    "bad min_likes",
			args:    []string{"min_likes=many"},
			wantErr: true,
		},
		{
			name:    "bad date",
			args:    []string{"from=yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := parseFilterArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}
