package specscot_test

import (
	"log"
	"testing"

	"github.com/alexandre-normand/specscot"
	"github.com/alexandre-normand/specscot/config"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

type countingUserInfoLoader struct {
	loadCount int
}

func (l *countingUserInfoLoader) GetUserInfo(userID string) (user *slack.User, err error) {
	l.loadCount = l.loadCount + 1
	return &slack.User{ID: userID, RealName: "Daniel Quinn"}, nil
}

func TestGetUserInfoWithCachingEnabled(t *testing.T) {
	v := config.NewViperWithDefaults()
	v.Set(config.UserInfoCacheSizeKey, 10)

	loader := new(countingUserInfoLoader)
	finder, err := specscot.NewCachingUserInfoFinder(v, loader, specscot.NewSLogger(log.New(&nullWriter{}, "", 0), false))
	assert.Nil(t, err)

	u, err := finder.GetUserInfo("U123")
	assert.Nil(t, err)
	assert.Equal(t, "Daniel Quinn", u.RealName)

	_, err = finder.GetUserInfo("U123")
	assert.Nil(t, err)
	assert.Equal(t, 1, loader.loadCount, "second lookup should be served from cache")
}

func TestGetUserInfoWithCachingDisabled(t *testing.T) {
	v := config.NewViperWithDefaults()

	loader := new(countingUserInfoLoader)
	finder, err := specscot.NewCachingUserInfoFinder(v, loader, specscot.NewSLogger(log.New(&nullWriter{}, "", 0), false))
	assert.Nil(t, err)

	finder.GetUserInfo("U123")
	finder.GetUserInfo("U123")

	assert.Equal(t, 2, loader.loadCount, "every lookup should hit the loader when caching is disabled")
}
