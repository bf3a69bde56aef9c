// Copyright (c) 2024, SignedJAR Contributors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package jar provides read access to Java archive (JAR) files, including the
// signing metadata embedded in them: the manifest, signature files and PKCS#7
// signature blocks stored under META-INF/.
package jar

import (
	"archive/zip"
	"crypto/x509"
	"io"
)

const (
	// ManifestVersion is the manifest specification version written and
	// understood by this package.
	ManifestVersion = "1.0"

	metaInfDir   = "META-INF/"
	manifestPath = "META-INF/MANIFEST.MF"
)

// Entry describes one entry of a JAR file, in archive order.
type Entry struct {
	zf *zip.File
}

// Name returns the path of the entry within the archive.
func (e Entry) Name() string { return e.zf.Name }

// IsDir returns whether the entry describes a directory.
func (e Entry) IsDir() bool { return e.zf.FileInfo().IsDir() }

// Size returns the uncompressed size of the entry content.
func (e Entry) Size() int64 { return int64(e.zf.UncompressedSize64) }

// open returns a reader over the entry content. Reading through the returned
// reader decompresses and checksums the content.
func (e Entry) open() (io.ReadCloser, error) { return e.zf.Open() }

// A File is a JAR file opened for reading.
type File struct {
	c  io.Closer // Non-nil if the File owns the underlying handle.
	zr *zip.Reader

	entries  []Entry
	manifest *Manifest // Nil if the archive carries no manifest.
	signers  []*signer
}

// Entries returns the entries of f in archive order.
func (f *File) Entries() []Entry { return f.entries }

// Manifest returns the parsed manifest of f, or nil if the archive carries no
// manifest.
func (f *File) Manifest() *Manifest { return f.manifest }

// EntryCertificates fully consumes the content of e through buf, and returns
// the certificate chains (leaf first) of the signers whose signatures cover e.
// An unsigned entry yields a nil result. Entry content is drained and
// discarded; memory use is bounded by len(buf), not by the entry size.
//
// The signer information attached to an entry is meaningful only once its
// content has been fully read, so EntryCertificates must consume the entry
// even when the caller has no use for the content.
//
// If the content does not match a digest declared for e in the manifest, an
// error wrapping an EntryDigestError is returned.
func (f *File) EntryCertificates(e Entry, buf []byte) ([][]*x509.Certificate, error) {
	return f.entryCertificates(e, buf)
}
