package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mvnconf/internal/app"
)

// requestFromFlags builds an app.Request from the persistent flags. Only
// flags given on the command line become overrides.
func requestFromFlags(cmd *cobra.Command) app.Request {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	defines, _ := flags.GetStringArray("define")
	noRemote, _ := flags.GetBool("no-remote")

	req := app.Request{
		ConfigPath: configPath,
		Defines:    defines,
		Overrides:  app.Overrides{NoRemote: noRemote},
	}

	changed := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	req.Overrides.LocalRepository = changed("local-repo")
	req.Overrides.HTTPProxy = changed("http-proxy")
	req.Overrides.HTTPSProxy = changed("https-proxy")
	req.Overrides.SnapshotPolicy = changed("snapshot-policy")

	if flags.Changed("remote-repo") {
		repos, _ := flags.GetStringArray("remote-repo")
		req.Overrides.RemoteRepositories = repos
	}

	return req
}
