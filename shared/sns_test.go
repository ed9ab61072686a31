package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSnsInfo(t *testing.T) {
	info, ok := GetSnsInfo(SnsX)
	assert.True(t, ok)
	assert.Equal(t, "X", info.Name)
	assert.Equal(t, 280, info.MaxLength)

	_, ok = GetSnsInfo(TargetSns("myspace"))
	assert.False(t, ok)
}

func TestParseTargetSns(t *testing.T) {
	for _, sns := range SnsList {
		parsed, err := ParseTargetSns(string(sns.Id))
		assert.NoError(t, err)
		assert.Equal(t, sns.Id, parsed)
	}

	_, err := ParseTargetSns("friendster")
	assert.Error(t, err)
}
