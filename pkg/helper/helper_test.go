package helper

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommon(t *testing.T) {
	assert.Equal(t, "\x1b[32;1mgreen\x1b[0m", StringGreen("green"))
	assert.Equal(t, "j***@mail.com", MaskEmail("joni@mail.com"))
	assert.Equal(t, "a@mail.com", MaskEmail("a@mail.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestParseFromQueryParam(t *testing.T) {
	type params struct {
		Email    string `json:"email" lower:"true"`
		Page     int    `json:"page" default:"1"`
		IsActive bool   `json:"isActive"`
		Offset   int    `json:"-"`
		NoTag    string
	}

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		urlVal, err := url.ParseQuery("email=Alice@Mail.com&isActive=true&NoTag=x")
		assert.NoError(t, err)

		var p params
		err = ParseFromQueryParam(urlVal, &p)
		assert.NoError(t, err)
		assert.Equal(t, "alice@mail.com", p.Email)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, true, p.IsActive)
		assert.Equal(t, "", p.NoTag)
	})
	t.Run("Testcase #2: Negative, invalid data type (string to int in struct)", func(t *testing.T) {
		urlVal, err := url.ParseQuery("page=undefined")
		assert.NoError(t, err)

		var p params
		err = ParseFromQueryParam(urlVal, &p)
		assert.Error(t, err)
	})
	t.Run("Testcase #3: Negative, invalid data type (not boolean)", func(t *testing.T) {
		urlVal, err := url.ParseQuery("isActive=terue")
		assert.NoError(t, err)

		var p params
		err = ParseFromQueryParam(urlVal, &p)
		assert.Error(t, err)
	})
	t.Run("Testcase #4: Negative, target is not pointer", func(t *testing.T) {
		var p params
		err := ParseFromQueryParam(url.Values{}, p)
		assert.Error(t, err)
	})
}

func TestMultiError(t *testing.T) {
	multiError := NewMultiError()
	assert.False(t, multiError.HasError())

	multiError.Append("b", errors.New("error b"))
	multiError.Append("a", errors.New("error a"))
	multiError.Append("nil", nil)
	assert.True(t, multiError.HasError())
	assert.Equal(t, "a: error a\nb: error b", multiError.Error())
	assert.Len(t, multiError.ToMap(), 2)
}
