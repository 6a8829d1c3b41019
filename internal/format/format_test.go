package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refDay = time.Date(2025, time.June, 9, 14, 30, 0, 0, time.UTC)

func TestCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{45, "R$ 45,00"},
		{120, "R$ 120,00"},
		{35.5, "R$ 35,50"},
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-45, "-R$ 45,00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.value))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "09/06/2025", Date(refDay))
}

func TestDateLong(t *testing.T) {
	assert.Equal(t, "segunda-feira, 9 de junho", DateLong(refDay))
	assert.Equal(t, "sábado, 1 de março", DateLong(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateShort(t *testing.T) {
	assert.Equal(t, "seg, 09/06", DateShort(refDay))
	assert.Equal(t, "dom, 31/08", DateShort(time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "14:30", Clock(refDay))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{30, "30min"},
		{45, "45min"},
		{60, "1h"},
		{90, "1h 30min"},
		{120, "2h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.minutes))
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"61998031185", "(61) 99803-1185"},
		{"(61) 99803-1185", "(61) 99803-1185"},
		{"61 99803 1185", "(61) 99803-1185"},
		{"6", "(6"},
		{"61", "(61"},
		{"619", "(61) 9"},
		{"6199803", "(61) 99803"},
		{"61998031", "(61) 99803-1"},
		{"619980311859999", "(61) 99803-1185"}, // excedente descartado
		{"", "("},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.in))
		})
	}
}
