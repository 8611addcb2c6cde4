package git

// InfoExcludePath is the repository-local ignore file, relative to the root.
const InfoExcludePath = ".git/info/exclude"

// FileExists reports whether path, relative to the working directory, is a
// regular file.
func (r *Repository) FileExists(path string) bool {
	info, err := r.Filesystem().Stat(path)
	return err == nil && !info.IsDir()
}
