package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyansh/career-compass/internal/types"
)

func TestMergeProgress_IntoNil(t *testing.T) {
	delta := types.Progress{"1": {"Go": {"topic": true}}}

	merged := mergeProgress(nil, delta)

	assert.True(t, merged["1"]["Go"]["topic"])
}

func TestMergeProgress_PreservesUntouchedKeys(t *testing.T) {
	existing := types.Progress{
		"1": {"Go": {"topic": true, "project": true}},
		"2": {"SQL": {"topic": true}},
	}
	delta := types.Progress{
		"1": {"Go": {"project": false}},
	}

	merged := mergeProgress(existing, delta)

	// The submitted flag wins; siblings stay as stored.
	assert.False(t, merged["1"]["Go"]["project"])
	assert.True(t, merged["1"]["Go"]["topic"])
	assert.True(t, merged["2"]["SQL"]["topic"])
}

func TestMergeProgress_AddsNewWeekAndTopic(t *testing.T) {
	existing := types.Progress{"1": {"Go": {"topic": true}}}
	delta := types.Progress{
		"1": {"Docker": {"topic": true}},
		"3": {"Kubernetes": {"project": true}},
	}

	merged := mergeProgress(existing, delta)

	assert.True(t, merged["1"]["Docker"]["topic"])
	assert.True(t, merged["3"]["Kubernetes"]["project"])
	assert.True(t, merged["1"]["Go"]["topic"])
}
