package content

import (
	"math"
	"testing"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/stretchr/testify/assert"
)

func TestValidateFileSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 5, false},
		{"exactly max size", 10, false},
		{"too large", 11, true},
		{"zero size", 0, false},
		{"unknown size", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileSize(tt.size, 10)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, files.ErrTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadLimit(t *testing.T) {
	assert.Equal(t, int64(11), ReadLimit(10, 1))
	assert.Equal(t, int64(math.MaxInt64), ReadLimit(math.MaxInt64, 1))
	assert.Equal(t, int64(math.MaxInt64), ReadLimit(math.MaxInt64-10, 64<<10))
	assert.Equal(t, int64(math.MaxInt64), ReadLimit(math.MaxInt64-1, 1))
}
