package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type videoInput struct {
	URL       string  `json:"url" validate:"required,url"`
	VideoType *string `json:"video_type" validate:"omitempty,is-video-type"`
}

type uploadInput struct {
	Category string `form:"category" validate:"required,is-upload-category"`
	Section  string `json:"section" validate:"omitempty,is-section"`
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	yt := "youtube"
	assert.NoError(t, v.Validate(&videoInput{URL: "https://youtu.be/abc", VideoType: &yt}))
	assert.NoError(t, v.Validate(&uploadInput{Category: "models", Section: "news"}))

	bad := "rutube"
	err := v.Validate(&videoInput{URL: "not a url", VideoType: &bad})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "url")
	assert.Contains(t, vErr.Errors, "video_type")

	err = v.Validate(&uploadInput{Category: "avatars", Section: "faq"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "Must be one of: models, news, employees, regulations", vErr.Errors["category"])
	assert.Contains(t, vErr.Errors, "section")
}

func TestIsUploadCategory(t *testing.T) {
	assert.True(t, IsUploadCategory("news"))
	assert.False(t, IsUploadCategory("../news"))
}
