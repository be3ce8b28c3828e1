package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaFromSpec(t *testing.T) {
	tests := []struct {
		spec string
		want uint8
	}{
		{spec: "0", want: 0},
		{spec: "1", want: 255},
		{spec: "0.5", want: 127},
		{spec: " 0.8 ", want: 204},
		{spec: "2", want: 255},
		{spec: "-1", want: 0},
		{spec: "opaque", want: 204},
		{spec: "", want: 204},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlphaFromSpec(tt.spec), "spec %q", tt.spec)
	}
}
