package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

// File extension constants.
const (
	ExtensionMP3  = ".mp3"
	ExtensionFLAC = ".flac"
	ExtensionLRC  = ".lrc"
	ExtensionTXT  = ".txt"
)
