package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	t.Parallel()

	info := Current()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, IsDevBuild(), info.DevBuild)
}

func TestIsDevBuild(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version == "dev", IsDevBuild())
}
