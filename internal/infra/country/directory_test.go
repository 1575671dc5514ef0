package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory_Name(t *testing.T) {
	dir := NewDirectory()

	assert.Equal(t, "United States", dir.Name("US"))
	assert.Equal(t, "Germany", dir.Name("de"))
	assert.Equal(t, "Taiwan", dir.Name("TW"))
	assert.Empty(t, dir.Name("ZZ"))
	assert.Empty(t, dir.Name(""))
}

func TestDirectory_IsValid(t *testing.T) {
	dir := NewDirectory()

	tests := []struct {
		code string
		want bool
	}{
		{code: "US", want: true},
		{code: "jp", want: true},
		{code: "ZZ", want: false},
		{code: "USA", want: false},
		{code: "U1", want: false},
		{code: "001", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, dir.IsValid(tt.code))
		})
	}
}
