package git

import (
	"github.com/Nivl/minigit/ginternals/githash"
	"github.com/sirupsen/logrus"
)

// The Try* methods wrap the methods of the same name, but never return
// an error. Failures are reported to the logger of the repository, and
// the zero value is returned instead. There is no way for the caller
// to know whether the operation succeeded.

// TryStage stages the given path. The null oid is returned on failure
func (r *Repository) TryStage(path string) githash.Oid {
	oid, err := r.Stage(path)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Error("could not stage")
		return r.hash.NullOid()
	}
	return oid
}

// TryCommit commits the staged entries. The null oid is returned on
// failure
func (r *Repository) TryCommit(author, message string) githash.Oid {
	oid, err := r.Commit(author, message)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"author": author,
			"error":  err,
		}).Error("could not commit")
		return r.hash.NullOid()
	}
	return oid
}

// TryCheckout checks out the commit matching the given fingerprint
func (r *Repository) TryCheckout(sha string) {
	oid, err := r.hash.ConvertFromString(sha)
	if err == nil {
		err = r.Checkout(oid)
	}
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"commit": sha,
			"error":  err,
		}).Error("could not checkout")
	}
}
