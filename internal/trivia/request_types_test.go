package trivia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsStringAndNumber(t *testing.T) {
	var req createQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category":"3","difficulty":4}`), &req))
	assert.EqualValues(t, 3, *req.Category)
	assert.EqualValues(t, 4, *req.Difficulty)

	var numeric createQuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"category":2}`), &numeric))
	assert.EqualValues(t, 2, *numeric.Category)

	var bad createQuestionRequest
	assert.Error(t, json.Unmarshal([]byte(`{"category":"two"}`), &bad))
}

func TestMergeHistoryDeduplicates(t *testing.T) {
	merged := mergeHistory([]int{1, 2, 3}, []int{3, 4, 2, 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, merged)

	assert.Empty(t, mergeHistory(nil, nil))
	assert.Equal(t, []int{7}, mergeHistory([]int{7}, nil))
}
