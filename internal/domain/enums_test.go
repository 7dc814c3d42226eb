package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ReviewStatus{
		ReviewStatusNew, ReviewStatusToCorrect, ReviewStatusApproved, ReviewStatusRejected,
	} {
		assert.True(t, s.IsValid(), s)
	}

	assert.False(t, ReviewStatus("PENDING").IsValid())
	assert.False(t, ReviewStatus("").IsValid())
}

func TestCreationSource_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, CreationSourceManual.IsValid())
	assert.True(t, CreationSourceAI.IsValid())
	assert.False(t, CreationSource("IMPORT").IsValid())
}
