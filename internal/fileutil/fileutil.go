// Package fileutil holds shared file permission constants.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for expanded spec output files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
