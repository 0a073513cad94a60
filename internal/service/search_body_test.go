package service

import (
	"encoding/json"
	"testing"

	"github.com/shermian8845-code/Videoshare/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchBody_SearchAndGenre(t *testing.T) {
	body, err := buildSearchBody(&dto.ListVideosQuery{
		Search: "Yoga",
		Genre:  "education",
		Limit:  20,
		Offset: 40,
	})
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))

	assert.Equal(t, float64(40), parsed["from"])
	assert.Equal(t, float64(20), parsed["size"])

	boolQuery := parsed["query"].(map[string]interface{})["bool"].(map[string]interface{})
	should := boolQuery["should"].([]interface{})
	require.Len(t, should, 3)

	// 子串匹配且大小写不敏感
	wildcard := should[0].(map[string]interface{})["wildcard"].(map[string]interface{})
	title := wildcard["title.keyword"].(map[string]interface{})
	assert.Equal(t, "*Yoga*", title["value"])
	assert.Equal(t, true, title["case_insensitive"])

	filter := boolQuery["filter"].([]interface{})
	term := filter[0].(map[string]interface{})["term"].(map[string]interface{})
	assert.Equal(t, "education", term["genre"])
}

func TestBuildSearchBody_NoFilters(t *testing.T) {
	body, err := buildSearchBody(&dto.ListVideosQuery{Limit: 20})
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))

	_, hasMatchAll := parsed["query"].(map[string]interface{})["match_all"]
	assert.True(t, hasMatchAll)
}

func TestEscapeWildcard(t *testing.T) {
	assert.Equal(t, `\*`, escapeWildcard("*"))
	assert.Equal(t, `\?`, escapeWildcard("?"))
	assert.Equal(t, `\\`, escapeWildcard(`\`))
	assert.Equal(t, "yoga", escapeWildcard("yoga"))
}
