package main

import (
	"github.com/Nivl/minigit"
	"github.com/Nivl/minigit/ginternals/config"
	"github.com/pkg/errors"
)

func loadRepository(cfg *globalFlags) (*git.Repository, error) {
	opts, err := config.LoadConfig(cfg.env, config.LoadConfigOptions{
		WorkingDirectory: cfg.C.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not load the config")
	}

	return git.OpenRepositoryWithOptions(opts.WorkTreePath, git.OpenOptions{
		Config: opts,
		Logger: cfg.logger,
	})
}
