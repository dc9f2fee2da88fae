package tide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr bool
		want    UnixTime
	}{
		"number": {
			raw:  "1234567890",
			want: 1234567890,
		},
		"zero": {
			raw:  "0",
			want: 0,
		},
		"negative number": {
			raw:     "-4",
			wantErr: true,
		},
		"time string": {
			raw:  `"2009-02-13T23:31:30Z"`,
			want: 1234567890,
		},
		"time string before epoch": {
			raw:     `"1969-02-13T23:31:30Z"`,
			wantErr: true,
		},
		"garbage": {
			raw:     `"not a time"`,
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got UnixTime
			err := got.UnmarshalJSON([]byte(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := AsUnixTime(time.Unix(1234567890, 0))
	assert.Equal(t, UnixTime(1234567890), now)
	assert.Equal(t, now+60, now.Add(time.Minute))
	// seconds granularity, anything less is dropped
	assert.Equal(t, now, now.Add(999*time.Millisecond))
	assert.Equal(t, now-60, now.Add(-time.Minute))
}

func TestUnixDurationUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr bool
		want    UnixDuration
	}{
		"number": {
			raw:  "3600",
			want: AsUnixDuration(time.Hour),
		},
		"human readable": {
			raw:  `"2h30m"`,
			want: AsUnixDuration(150 * time.Minute),
		},
		"negative number": {
			raw:  "-5",
			want: -5,
		},
		"garbage": {
			raw:     `"not a duration"`,
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got UnixDuration
			err := got.UnmarshalJSON([]byte(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
