package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning slot", input: "08:00", want: TimeString("08:00")},
		{name: "valid afternoon slot", input: "15:30", want: TimeString("15:30")},
		{name: "midnight", input: "00:00", want: TimeString("00:00")},
		{name: "with seconds", input: "08:00:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("16:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	slot := TimeString("10:30")

	next, err := slot.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), next)
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "string with seconds", src: "09:00:00", want: TimeString("09:00")},
		{name: "plain string", src: "09:00", want: TimeString("09:00")},
		{name: "byte slice", src: []byte("14:30:00"), want: TimeString("14:30")},
		{name: "time value", src: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC), want: TimeString("11:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)
}
