package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

func iv(fromMin, toMin int) Interval {
	return Interval{Start: t0.Add(time.Duration(fromMin) * time.Minute), End: t0.Add(time.Duration(toMin) * time.Minute)}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "disjoint", a: iv(0, 30), b: iv(60, 90), want: false},
		{name: "back to back", a: iv(0, 30), b: iv(30, 60), want: false},
		{name: "partial", a: iv(0, 45), b: iv(30, 60), want: true},
		{name: "contained", a: iv(0, 60), b: iv(15, 45), want: true},
		{name: "identical", a: iv(0, 60), b: iv(0, 60), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Within(t *testing.T) {
	slot := iv(0, 60)

	assert.True(t, iv(15, 45).Within(slot))
	assert.True(t, iv(0, 60).Within(slot))
	assert.False(t, iv(30, 75).Within(slot))
	assert.False(t, iv(-15, 30).Within(slot))
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, iv(0, 1).Valid())
	assert.False(t, iv(0, 0).Valid())
	assert.False(t, iv(10, 0).Valid())
}
