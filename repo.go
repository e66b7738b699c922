// Package git contains the porcelain of a minimal version control
// system: staging files, committing them, and checking out a commit
package git

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Nivl/minigit/backend"
	"github.com/Nivl/minigit/ginternals"
	"github.com/Nivl/minigit/ginternals/config"
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/Nivl/minigit/ginternals/object"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// List of errors returned by the Repository struct
var (
	ErrRepositoryNotExist           = errors.New("repository does not exist")
	ErrRepositoryUnsupportedVersion = errors.New("repository not supported")
	ErrRepositoryExists             = errors.New("repository already exists")
)

// Author and message of the commit created when a repository is
// initialized
const (
	RootCommitAuthor  = "minigit"
	RootCommitMessage = "initial commit"
)

// supportedFormatVersion is the only version of the repository format
// we know how to read
const supportedFormatVersion = 0

// Repository represents a repository: a working tree and the
// directory that stores its history.
//
// A Repository has no internal locking. No two operations should run
// concurrently on the same repository
type Repository struct {
	Config *config.Config

	dotGit *backend.Backend
	wt     afero.Fs
	hash   githash.Hash
	logger logrus.FieldLogger
}

// InitOptions contains all the optional data used to initialized a
// repository
type InitOptions struct {
	// Config contains the paths of the repository.
	// Defaults to a .minigit directory inside the working tree
	Config *config.Config
	// Logger is used by the Try* methods to report errors.
	// Defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// InitRepository initialize a new repository by creating the .minigit
// directory in the given path, and by creating a first commit
func InitRepository(workTreePath string) (*Repository, error) {
	return InitRepositoryWithOptions(workTreePath, InitOptions{})
}

// InitRepositoryWithOptions initialize a new repository by creating
// its layout and by creating a first commit.
// ErrRepositoryExists is returned if the repository already has a
// commit
func InitRepositoryWithOptions(workTreePath string, opts InitOptions) (r *Repository, err error) {
	cfg := opts.Config
	if cfg == nil {
		cfg, err = config.LoadConfigSkipEnv(config.LoadConfigOptions{
			WorkingDirectory: workTreePath,
			SkipGitDirLookUp: true,
		})
		if err != nil {
			return nil, xerrors.Errorf("could not load the config: %w", err)
		}
	}

	r, err = newRepository(cfg, opts.Logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			r.Close() //nolint:errcheck // we already are returning an error
		}
	}()

	head, err := r.dotGit.Head()
	if err != nil {
		return nil, xerrors.Errorf("could not check for an existing repository: %w", err)
	}
	if !head.IsZero() {
		return nil, ErrRepositoryExists
	}

	if err = r.dotGit.Init(); err != nil {
		return nil, xerrors.Errorf("could not initialize the repository: %w", err)
	}
	if err = cfg.Reload(); err != nil {
		return nil, xerrors.Errorf("could not reload the config: %w", err)
	}

	if _, err = r.Commit(RootCommitAuthor, RootCommitMessage); err != nil {
		return nil, xerrors.Errorf("could not create the root commit: %w", err)
	}
	return r, nil
}

// OpenOptions contains all the optional data used to open a
// repository
type OpenOptions struct {
	// Config contains the paths of the repository.
	// Defaults to a .minigit directory inside the working tree
	Config *config.Config
	// Logger is used by the Try* methods to report errors.
	// Defaults to the logrus standard logger
	Logger logrus.FieldLogger
}

// OpenRepository loads an existing repository by reading its
// config file, and returns a Repository instance
func OpenRepository(workTreePath string) (*Repository, error) {
	return OpenRepositoryWithOptions(workTreePath, OpenOptions{})
}

// OpenRepositoryWithOptions loads an existing repository by reading
// its config file, and returns a Repository instance
func OpenRepositoryWithOptions(workTreePath string, opts OpenOptions) (r *Repository, err error) {
	cfg := opts.Config
	if cfg == nil {
		cfg, err = config.LoadConfigSkipEnv(config.LoadConfigOptions{
			WorkingDirectory: workTreePath,
			SkipGitDirLookUp: true,
		})
		if err != nil {
			return nil, xerrors.Errorf("could not load the config: %w", err)
		}
	}

	// HEAD is always created with the repository, so if it doesn't
	// exist then there's no repository
	if _, err = cfg.FS.Stat(ginternals.HeadPath(cfg)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrRepositoryNotExist
		}
		return nil, ginternals.FSError("stat", ginternals.HeadPath(cfg), err)
	}

	version, ok := cfg.FromFiles().RepoFormatVersion()
	if ok && version != supportedFormatVersion {
		return nil, xerrors.Errorf("version %d: %w", version, ErrRepositoryUnsupportedVersion)
	}

	return newRepository(cfg, opts.Logger)
}

func newRepository(cfg *config.Config, logger logrus.FieldLogger) (*Repository, error) {
	if cfg.FS == nil {
		cfg.FS = afero.NewOsFs()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	hash, err := githash.NewFromName(cfg.FromFiles().HashName())
	if err != nil {
		return nil, xerrors.Errorf("could not get the hash of the repository: %w", err)
	}

	dotGit, err := backend.NewFS(cfg, hash)
	if err != nil {
		return nil, xerrors.Errorf("could not create the backend: %w", err)
	}

	return &Repository{
		Config: cfg,
		dotGit: dotGit,
		wt:     cfg.FS,
		hash:   hash,
		logger: logger,
	}, nil
}

// Close frees the resources used by the repository
func (r *Repository) Close() error {
	return r.dotGit.Close()
}

// Hash returns the hash used to fingerprint the objects of the
// repository
func (r *Repository) Hash() githash.Hash {
	return r.hash
}

// Head returns the fingerprint of the latest commit, or the null oid
// if there are no commits
func (r *Repository) Head() (githash.Oid, error) {
	return r.dotGit.Head()
}

// Index returns the entries waiting to be committed
func (r *Repository) Index() ([]object.TreeEntry, error) {
	idx, err := r.dotGit.Index()
	if err != nil {
		return nil, xerrors.Errorf("could not read the index: %w", err)
	}
	return idx.Entries(), nil
}

// onOsFs returns whether the working tree is on the OS filesystem,
// which is the only one supporting symbolic links
func (r *Repository) onOsFs() bool {
	_, ok := r.wt.(*afero.OsFs)
	return ok
}

// absPath returns the absolute version of p. Relative paths are
// relative to the working tree
func (r *Repository) absPath(p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.Config.WorkTreePath, p)
	}
	return filepath.Clean(p)
}
