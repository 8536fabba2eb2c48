package cmd

import "fmt"

// Version information, set during build via -ldflags "-X github.com/ytget/infobar/cmd.version=X.Y.Z"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func versionTemplate() string {
	versionTpl := `infobar
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, version, commit, date)
}
