package util_test

import (
	"media-share-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMediaID_Format(t *testing.T) {
	id := util.GenerateMediaID()

	assert.Len(t, id, 32)
	assert.True(t, util.ValidMediaID(id))
}

func TestGenerateMediaID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		id := util.GenerateMediaID()
		_, duplicate := seen[id]
		assert.False(t, duplicate, "повторился идентификатор %s", id)
		seen[id] = struct{}{}
	}
}

func TestValidMediaID(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"корректный id", "3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1d", true},
		{"пустая строка", "", false},
		{"слишком короткий", "3f2a8c1d", false},
		{"слишком длинный", "3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1dff", false},
		{"верхний регистр", "3F2A8C1D9E4B4F6A8C1D9E4B3F2A8C1D", false},
		{"uuid с дефисами", "3f2a8c1d-9e4b-4f6a-8c1d-9e4b3f2a8c1d", false},
		{"попытка обхода пути", "../../etc/passwd.............../..", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, util.ValidMediaID(tc.id))
		})
	}
}
