package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01-10", "2024-01-10", 0},
		{"2024-01-10", "2024-01-17", 7},
		{"2024-01-10", "2024-01-09", -1},
		{"2024-02-28", "2024-03-01", 2},
		{"2023-12-31", "2024-01-01", 1},
		{"2024-01-10", "2400-01-10", 137331},
		{"2400-01-10", "2024-01-10", -137331},
		{"1900-01-01", "2024-01-01", 45290},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(MustParseDate(tt.from), MustParseDate(tt.to)))
		})
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := MustParseDate("2024-01-30")

	assert.Equal(t, MustParseDate("2024-02-29"), d.AddDays(30))
	assert.Equal(t, MustParseDate("2023-12-31"), d.AddDays(-30))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.Equal(t, 0, d.Compare(NewDate(2024, time.January, 30)))
	assert.Equal(t, d, MaxDate(d, d.AddDays(-5)))
	// 32 января превращается в 1 февраля
	assert.Equal(t, MustParseDate("2024-02-01"), NewDate(2024, time.January, 32))
}

func TestDate_Format(t *testing.T) {
	d := MustParseDate("2024-01-05")

	assert.Equal(t, "2024-01-05", d.String())
	assert.Equal(t, "05/01/2024", d.BR())
	assert.Empty(t, Date{}.String())
	assert.Empty(t, Date{}.BR())
}

func TestDate_JSON(t *testing.T) {
	type doc struct {
		Vencimento Date `json:"vencimento"`
	}

	body, err := json.Marshal(doc{Vencimento: MustParseDate("2024-01-05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vencimento":"2024-01-05"}`, string(body))

	tests := []struct {
		name    string
		body    string
		want    Date
		wantErr bool
	}{
		{name: "iso", body: `{"vencimento":"2024-01-05"}`, want: MustParseDate("2024-01-05")},
		{name: "null", body: `{"vencimento":null}`},
		{name: "empty", body: `{"vencimento":""}`},
		{name: "br layout", body: `{"vencimento":"05/01/2024"}`, wantErr: true},
		{name: "number", body: `{"vencimento":20240105}`, wantErr: true},
		{name: "invalid day", body: `{"vencimento":"2024-02-30"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got doc
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Vencimento)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseDate("x") })
}
