package version

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	req := require.New(t)

	info := Get()
	req.Equal(Version, info.Version)
	req.Equal(GitCommit, info.GitCommit)
	req.Equal(BuildDate, info.BuildDate)
	req.Equal(runtime.Version(), info.GoVersion)
	req.Equal(fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), info.Platform)
}

func TestInfo_String(t *testing.T) {
	req := require.New(t)

	info := Info{
		Version:   "1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-08-29",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}
	req.Equal("jssort 1.2.3 (commit abc1234, built 2026-08-29, go1.24.0, linux/amd64)", info.String())
}
