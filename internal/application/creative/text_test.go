package creative

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Zestawy mebli", "zestawy mebli"},
		{"Świadomi klienci", "świadomi klienci"},
		{"5-letnia gwarancja", "5-letnia gwarancja"},
		{"GPS w zestawie", "GPS w zestawie"},
		{"iPhone", "iPhone"},
		{"Ż", "ż"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, lowerFirst(tt.in))
		})
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Łóżka", upperFirst("łóżka"))
	assert.Equal(t, "Już", upperFirst("Już"))
	assert.Equal(t, "", upperFirst(""))
	assert.Equal(t, "5 lat", upperFirst("5 lat"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil, "i"))
	assert.Equal(t, "a", joinList([]string{"a"}, "i"))
	assert.Equal(t, "a i b", joinList([]string{"a", "b"}, "i"))
	assert.Equal(t, "a, b oraz c", joinList([]string{"a", "b", "c"}, "oraz"))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "a b c", clean("  a \n b\t\tc  "))
	// decomposed "ó" (o + combining acute) becomes the composed form
	assert.Equal(t, "ogr\u00f3d", clean("ogro\u0301d"))
	assert.Equal(t, "", clean(" \t\n "))
}

func TestFragmentDropsTrailingFullStops(t *testing.T) {
	assert.Equal(t, "Wiosna w ogrodzie", fragment(" Wiosna w ogrodzie... "))
	assert.Equal(t, ".", fragment(" . "))
	assert.Equal(t, "...", fragment("..."))
	assert.Equal(t, "", fragment(" \t\n "))
}
