// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package git derives version information from the state of a git repository.
package git

import (
	"errors"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

var errTagNotFound = errors.New("semantic version tag not found")

// Description describes HEAD of a git repository relative to the nearest
// semantic version tag reachable from it.
type Description struct {
	clean bool            // False if the working tree has local modifications.
	head  *object.Commit  // Commit being described.
	tag   *semver.Version // Nearest reachable semver tag, if any.
	ahead uint64          // Commits between tag and head.
}

// semverTags returns the tagged semantic versions of r, by target commit.
// Tags are read from references rather than tag objects, so unreferenced
// (deleted) tags are not considered.
func semverTags(r *git.Repository) (map[plumbing.Hash]semver.Version, error) {
	iter, err := r.Tags()
	if err != nil {
		return nil, err
	}

	tags := make(map[plumbing.Hash]semver.Version)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		v, err := semver.Parse(strings.TrimPrefix(ref.Name().Short(), "v"))
		if err != nil {
			return nil // Not a semver tag.
		}

		obj, err := r.TagObject(ref.Hash())
		switch {
		case err == nil:
			tags[obj.Target] = v // Annotated tag.
		case errors.Is(err, plumbing.ErrObjectNotFound):
			tags[ref.Hash()] = v // Lightweight tag.
		default:
			return err
		}
		return nil
	})
	return tags, err
}

// Describe returns a Description of HEAD of the git repository at path.
func Describe(path string) (*Description, error) {
	r, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	ref, err := r.Head()
	if err != nil {
		return nil, err
	}

	head, err := r.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}

	tags, err := semverTags(r)
	if err != nil {
		return nil, err
	}

	d := Description{head: head}

	// Walk the log from HEAD until a tagged commit is found.
	log, err := r.Log(&git.LogOptions{Order: git.LogOrderCommitterTime, From: head.Hash})
	if err != nil {
		return nil, err
	}
	err = log.ForEach(func(c *object.Commit) error {
		if v, ok := tags[c.Hash]; ok {
			d.tag = &v
			return storer.ErrStop
		}
		d.ahead++
		return nil
	})
	if err != nil {
		return nil, err
	}

	w, err := r.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := w.Status()
	if err != nil {
		return nil, err
	}
	d.clean = status.IsClean()

	return &d, nil
}

// IsClean returns false if the git working tree has local modifications.
func (d *Description) IsClean() bool { return d.clean }

// CommitHash returns the hash of the commit described by d.
func (d *Description) CommitHash() string { return d.head.Hash.String() }

// CommitTime returns the committer time of the commit described by d.
func (d *Description) CommitTime() time.Time { return d.head.Committer.When }

// Version returns a semantic version based on d. If HEAD is tagged directly,
// the tagged version is returned. Otherwise a version is derived that sorts
// after the tag while preserving semantic precedence, by appending "0.dev.N"
// pre-release components (bumping the patch number first if the tag carries
// no pre-release of its own). If no semver tag is reachable, errTagNotFound
// is returned.
func (d *Description) Version() (semver.Version, error) {
	if d.tag == nil {
		return semver.Version{}, errTagNotFound
	}

	v := *d.tag
	if d.ahead == 0 {
		return v, nil
	}

	if len(v.Pre) == 0 {
		v.Patch++
	}
	v.Pre = append(v.Pre,
		semver.PRVersion{VersionNum: 0, IsNum: true},
		semver.PRVersion{VersionStr: "dev"},
		semver.PRVersion{VersionNum: d.ahead, IsNum: true},
	)

	return v, nil
}
